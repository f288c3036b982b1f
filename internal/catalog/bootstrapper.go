package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/drivestore"
	"github.com/2beens/gymplan/internal/hevy"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const templatesPageSize = 50

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

type datasetResolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
	SaveLocal(name string, data []byte) error
}

type templatesAPI interface {
	ExerciseTemplates(ctx context.Context, page, pageSize int) (*hevy.ExerciseTemplatesPage, error)
}

// Bootstrapper makes sure a reference exercise catalog is available:
// resolved from the local dir or Google Drive if present, otherwise fetched
// page by page from the Hevy API and persisted locally for the next run.
type Bootstrapper struct {
	resolver    datasetResolver
	hevyClient  templatesAPI
	datasetName string
}

func NewBootstrapper(resolver datasetResolver, hevyClient templatesAPI, datasetName string) *Bootstrapper {
	return &Bootstrapper{
		resolver:    resolver,
		hevyClient:  hevyClient,
		datasetName: datasetName,
	}
}

func (b *Bootstrapper) EnsureCatalog(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.ensureCatalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := b.resolver.Resolve(ctx, b.datasetName)
	if err == nil {
		return ParseCSV(data)
	}
	if !errors.Is(err, drivestore.ErrNotFound) {
		return nil, fmt.Errorf("resolve catalog dataset: %w", err)
	}

	log.Warnf("%q missing, downloading exercise catalog from hevy api ...", b.datasetName)

	entries, err := b.fetchAllTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch exercise templates: %w", err)
	}

	csvBytes, err := ToCSV(entries)
	if err != nil {
		return nil, err
	}
	if err := b.resolver.SaveLocal(b.datasetName, csvBytes); err != nil {
		// catalog is still usable for this run
		log.Errorf("failed to persist exercise catalog locally: %s", err)
	} else {
		log.Infof("saved %d exercises to %q", len(entries), b.datasetName)
	}

	return entries, nil
}

func (b *Bootstrapper) fetchAllTemplates(ctx context.Context) ([]Entry, error) {
	var entries []Entry

	page := 1
	pageCount := 1
	for page <= pageCount {
		templatesPage, err := b.hevyClient.ExerciseTemplates(ctx, page, templatesPageSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		// a missing or bogus page count must not make this loop unbounded
		if templatesPage.PageCount >= 1 {
			pageCount = templatesPage.PageCount
		}

		for _, template := range templatesPage.ExerciseTemplates {
			entries = append(entries, Entry{
				ID:                 template.ID,
				Title:              template.Title,
				PrimaryMuscleGroup: template.PrimaryMuscleGroup,
			})
		}

		page++
	}

	return entries, nil
}
