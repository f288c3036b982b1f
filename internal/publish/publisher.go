package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/2beens/gymplan/internal/hevy"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=publish_test

type routinesAPI interface {
	RoutineFolders(ctx context.Context) ([]hevy.RoutineFolder, error)
	CreateRoutineFolder(ctx context.Context, title string) (*hevy.RoutineFolder, error)
	RoutinesInFolder(ctx context.Context, folderID int) ([]hevy.RoutineRef, error)
	CreateRoutine(ctx context.Context, payload map[string]any) error
	DeleteRoutine(ctx context.Context, routineID string) error
}

type Status string

const (
	StatusPublished Status = "published"
	StatusPartial   Status = "partial"
	StatusFailed    Status = "failed"
	StatusDryRun    Status = "dry-run"
	StatusEmpty     Status = "empty"
)

// RoutineFailure records one routine that could not be posted.
type RoutineFailure struct {
	Title string
	Err   error
}

// Report is the outcome of one publish: which routines made it, which did
// not, and the folder they went into. In dry-run mode Payload holds the
// exact bytes that would have been sent.
type Report struct {
	DryRun      bool
	FolderID    int
	FolderTitle string
	Succeeded   []string
	Failed      []RoutineFailure
	Payload     []byte
	Err         error
}

func (r *Report) Status() Status {
	switch {
	case r.DryRun:
		return StatusDryRun
	case len(r.Succeeded) == 0 && len(r.Failed) == 0:
		return StatusEmpty
	case len(r.Failed) == 0:
		return StatusPublished
	case len(r.Succeeded) == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}

// Publisher uploads generated routines into a dated routine folder on Hevy.
// The default publish path only appends: it never deletes routines published
// earlier. CleanFolder is the separate, explicitly invoked cleanup path.
type Publisher struct {
	hevyClient     routinesAPI
	baseFolderName string
	dryRun         bool
}

func NewPublisher(hevyClient routinesAPI, baseFolderName string, dryRun bool) *Publisher {
	return &Publisher{
		hevyClient:     hevyClient,
		baseFolderName: baseFolderName,
		dryRun:         dryRun,
	}
}

// Publish normalizes the generated plan and posts each routine into the
// folder derived from the current date. Per-routine failures are recorded
// in the report and do not stop the remaining routines.
func (p *Publisher) Publish(ctx context.Context, rawPlan json.RawMessage, now time.Time) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "publish.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routines, err := NormalizeRoutines(rawPlan)
	if err != nil {
		if errors.Is(err, ErrNoRoutines) {
			log.Errorf("publish: %s", err)
			return &Report{Err: err}, nil
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("routines", len(routines)))

	if p.dryRun {
		// the exact wire payloads, with a placeholder folder id since no
		// folder gets resolved without network calls
		payloads := make([]map[string]any, 0, len(routines))
		for _, routine := range routines {
			payloads = append(payloads, wirePayload(routine, 0))
		}
		payload, err := json.MarshalIndent(payloads, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal dry-run payload: %w", err)
		}
		log.Infof("[DRY RUN] skipping upload, would have sent:\n%s", payload)
		return &Report{
			DryRun:  true,
			Payload: payload,
		}, nil
	}

	folderTitle := fmt.Sprintf("%s %s", p.baseFolderName, now.Format("2006-01-02"))
	folderID, err := p.getOrCreateFolder(ctx, folderTitle)
	if err != nil {
		return nil, fmt.Errorf("get or create folder %q: %w", folderTitle, err)
	}

	report := &Report{
		FolderID:    folderID,
		FolderTitle: folderTitle,
	}

	log.Infof("creating %d new routine(s) in folder %q ...", len(routines), folderTitle)

	for _, routine := range routines {
		payload := wirePayload(routine, folderID)

		title := routine.Title()
		if err := p.hevyClient.CreateRoutine(ctx, payload); err != nil {
			log.Errorf("failed to post routine %q: %s", title, err)
			report.Failed = append(report.Failed, RoutineFailure{
				Title: title,
				Err:   err,
			})
			report.Err = multierr.Append(report.Err, fmt.Errorf("routine %q: %w", title, err))
			continue
		}
		log.Infof("posted routine: %s", title)
		report.Succeeded = append(report.Succeeded, title)
	}

	return report, nil
}

// wirePayload builds the request body posted per routine. The routine map is
// copied before the folder id is injected, so the normalized plan stays
// untouched.
func wirePayload(routine Routine, folderID int) map[string]any {
	tagged := maps.Clone(map[string]any(routine))
	tagged["folder_id"] = folderID
	return map[string]any{"routine": tagged}
}

// getOrCreateFolder reuses the folder with the exact given title if one
// exists, so publishing twice on the same date stays idempotent.
func (p *Publisher) getOrCreateFolder(ctx context.Context, title string) (int, error) {
	folders, err := p.hevyClient.RoutineFolders(ctx)
	if err != nil {
		return 0, err
	}
	for _, folder := range folders {
		if folder.Title == title {
			log.Debugf("found existing folder %q (id: %d)", title, folder.ID)
			return folder.ID, nil
		}
	}

	folder, err := p.hevyClient.CreateRoutineFolder(ctx, title)
	if err != nil {
		return 0, err
	}
	return folder.ID, nil
}

// CleanFolder deletes all routines scoped to the given folder, best-effort
// per routine. The folder itself is kept. Used by the ad hoc re-publish
// path, never by the regular pipeline.
func (p *Publisher) CleanFolder(ctx context.Context, folderID int) (deleted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "publish.cleanFolder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("folder_id", folderID))

	routines, err := p.hevyClient.RoutinesInFolder(ctx, folderID)
	if err != nil {
		return 0, fmt.Errorf("list routines in folder %d: %w", folderID, err)
	}
	if len(routines) == 0 {
		log.Infof("no existing routines to delete in folder %d", folderID)
		return 0, nil
	}

	log.Infof("deleting %d existing routine(s) ...", len(routines))

	var deleteErrs error
	for _, routine := range routines {
		if err := p.hevyClient.DeleteRoutine(ctx, routine.ID); err != nil {
			log.Errorf("failed to delete routine %q: %s", routine.Title, err)
			deleteErrs = multierr.Append(deleteErrs, fmt.Errorf("routine %q: %w", routine.Title, err))
			continue
		}
		log.Debugf("deleted routine: %s", routine.Title)
		deleted++
	}

	return deleted, deleteErrs
}
