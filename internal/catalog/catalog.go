package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Entry is one exercise of the reference catalog. Muscle group columns are
// optional: a catalog bootstrapped from the Hevy API and persisted locally
// carries only id and title.
type Entry struct {
	ID                    string
	Title                 string
	PrimaryMuscleGroup    string
	SecondaryMuscleGroups string
}

// ParseCSV reads catalog entries from CSV bytes. Columns are located by
// header name; id and title are required, muscle group columns optional.
func ParseCSV(data []byte) ([]Entry, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog csv header: %w", err)
	}

	col := make(map[string]int)
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	idIdx, ok := col["id"]
	if !ok {
		return nil, fmt.Errorf("catalog csv has no id column")
	}
	titleIdx, ok := col["title"]
	if !ok {
		return nil, fmt.Errorf("catalog csv has no title column")
	}
	primaryIdx, hasPrimary := col["primary_muscle_group"]
	secondaryIdx, hasSecondary := col["secondary_muscle_groups"]

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog csv record: %w", err)
		}

		if len(record) <= idIdx || len(record) <= titleIdx {
			log.Warnf("skipping short catalog record: %v", record)
			continue
		}

		entry := Entry{
			ID:    strings.TrimSpace(record[idIdx]),
			Title: strings.TrimSpace(record[titleIdx]),
		}
		if hasPrimary && len(record) > primaryIdx {
			entry.PrimaryMuscleGroup = strings.TrimSpace(record[primaryIdx])
		}
		if hasSecondary && len(record) > secondaryIdx {
			entry.SecondaryMuscleGroups = strings.TrimSpace(record[secondaryIdx])
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ToCSV serializes entries to the persisted catalog format: id and title only.
func ToCSV(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"id", "title"}); err != nil {
		return nil, fmt.Errorf("write catalog csv header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write([]string{entry.ID, entry.Title}); err != nil {
			return nil, fmt.Errorf("write catalog csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush catalog csv: %w", err)
	}

	return buf.Bytes(), nil
}
