package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/catalog"
	"github.com/2beens/gymplan/internal/drivestore"
	"github.com/2beens/gymplan/internal/plangen"
	"github.com/2beens/gymplan/internal/publish"
	"github.com/2beens/gymplan/internal/stats"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=pipeline_test

type catalogEnsurer interface {
	EnsureCatalog(ctx context.Context) ([]catalog.Entry, error)
}

type datasetResolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
}

type planGenerator interface {
	GeneratePlan(ctx context.Context, prompt string) (json.RawMessage, error)
}

type planPublisher interface {
	Publish(ctx context.Context, rawPlan json.RawMessage, now time.Time) (*publish.Report, error)
}

type RunnerParams struct {
	Catalog          catalogEnsurer
	Resolver         datasetResolver
	Generator        planGenerator
	Publisher        planPublisher
	PromptTemplate   string
	StatsDatasetName string
	Months           int
	NowFunc          func() time.Time
}

// Runner drives the whole monthly plan pipeline, one stage at a time:
// catalog -> raw sets -> aggregation -> generation -> publish. A missing
// dataset or empty window degrades the prompt context; a generation or
// publish-request error aborts the run.
type Runner struct {
	catalog          catalogEnsurer
	resolver         datasetResolver
	generator        planGenerator
	publisher        planPublisher
	promptTemplate   string
	statsDatasetName string
	months           int
	nowFunc          func() time.Time
}

func NewRunner(params RunnerParams) *Runner {
	nowFunc := params.NowFunc
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Runner{
		catalog:          params.Catalog,
		resolver:         params.Resolver,
		generator:        params.Generator,
		publisher:        params.Publisher,
		promptTemplate:   params.PromptTemplate,
		statsDatasetName: params.StatsDatasetName,
		months:           params.Months,
		nowFunc:          nowFunc,
	}
}

func (r *Runner) Run(ctx context.Context) (_ *publish.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "pipeline.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Infoln("--- STEP 1: GATHERING DATA ---")

	entries, err := r.catalog.EnsureCatalog(ctx)
	if err != nil {
		// aggregation degrades to null muscle groups, the run continues
		log.Errorf("exercise catalog unavailable: %s", err)
		entries = nil
	}

	sets, err := r.resolveSets(ctx)
	if err != nil {
		return nil, err
	}

	var summary *stats.Summary
	switch {
	case len(sets) == 0:
		log.Warnln("no raw set data, skipping aggregations")
	case len(entries) == 0:
		log.Warnln("skipping aggregations: exercise catalog not available")
	default:
		log.Infof("calculating %d-month aggregations (1RM & volume) ...", r.months)
		summary, err = stats.Aggregate(sets, entries, r.months, r.nowFunc())
		if err != nil {
			if !errors.Is(err, stats.ErrNoData) {
				return nil, fmt.Errorf("aggregate training data: %w", err)
			}
			log.Warnf("no data found in the last %d months", r.months)
			summary = nil
		}
	}

	log.Infoln("--- STEP 2: CONSULTING GEMINI COACH ---")

	prompt := plangen.BuildPrompt(plangen.PromptData{
		Template:   r.promptTemplate,
		Catalog:    entries,
		RecentSets: sets,
		Summary:    summary,
		Months:     r.months,
	})

	rawPlan, err := r.generator.GeneratePlan(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	log.Infoln("--- STEP 3: UPLOADING TO HEVY ---")

	report, err := r.publisher.Publish(ctx, rawPlan, r.nowFunc())
	if err != nil {
		return nil, fmt.Errorf("publish plan: %w", err)
	}

	log.Infof(
		"publish done, status: %s (succeeded: %d, failed: %d)",
		report.Status(), len(report.Succeeded), len(report.Failed),
	)

	return report, nil
}

func (r *Runner) resolveSets(ctx context.Context) ([]stats.Set, error) {
	statsBytes, err := r.resolver.Resolve(ctx, r.statsDatasetName)
	if err != nil {
		if errors.Is(err, drivestore.ErrNotFound) {
			log.Warnf("raw set dataset %q not found, continuing without it", r.statsDatasetName)
			return nil, nil
		}
		return nil, fmt.Errorf("resolve %q: %w", r.statsDatasetName, err)
	}

	sets, err := stats.ParseSets(statsBytes)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", r.statsDatasetName, err)
	}

	log.Debugf("loaded %d raw sets from %q", len(sets), r.statsDatasetName)

	return sets, nil
}
