package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Set is one logged exercise set from the raw workout log.
type Set struct {
	Date     time.Time
	Exercise string
	Weight   float64
	Reps     float64
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
	"02 Jan 2006, 15:04",
}

// ParseSets reads the raw set log from CSV bytes. Columns are located by
// header name: Date, Exercise, Reps and a Weight column (the export names it
// "Weight (lbs)" or "Weight (kg)" depending on the unit setting). Rows that
// fail to parse are skipped with a warning, not fatal.
func ParseSets(data []byte) ([]Set, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read set log csv header: %w", err)
	}

	dateIdx, exerciseIdx, weightIdx, repsIdx := -1, -1, -1, -1
	for i, name := range header {
		switch normalized := strings.TrimSpace(strings.ToLower(name)); {
		case normalized == "date":
			dateIdx = i
		case normalized == "exercise":
			exerciseIdx = i
		case strings.HasPrefix(normalized, "weight"):
			weightIdx = i
		case normalized == "reps":
			repsIdx = i
		}
	}
	if dateIdx < 0 || exerciseIdx < 0 || weightIdx < 0 || repsIdx < 0 {
		return nil, fmt.Errorf("set log csv misses required columns (have: %v)", header)
	}

	var sets []Set
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read set log csv record: %w", err)
		}

		set, err := parseSetRecord(record, dateIdx, exerciseIdx, weightIdx, repsIdx)
		if err != nil {
			log.Warnf("skipping set record %v: %s", record, err)
			continue
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func parseSetRecord(record []string, dateIdx, exerciseIdx, weightIdx, repsIdx int) (Set, error) {
	maxIdx := dateIdx
	for _, idx := range []int{exerciseIdx, weightIdx, repsIdx} {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if len(record) <= maxIdx {
		return Set{}, fmt.Errorf("record too short")
	}

	date, err := parseDate(strings.TrimSpace(record[dateIdx]))
	if err != nil {
		return Set{}, err
	}

	weight, err := parseNumber(record[weightIdx])
	if err != nil {
		return Set{}, fmt.Errorf("weight: %w", err)
	}
	reps, err := parseNumber(record[repsIdx])
	if err != nil {
		return Set{}, fmt.Errorf("reps: %w", err)
	}

	return Set{
		Date:     date,
		Exercise: strings.TrimSpace(record[exerciseIdx]),
		Weight:   weight,
		Reps:     reps,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", value)
}

func parseNumber(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
