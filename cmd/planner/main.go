package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/gymplan/internal/catalog"
	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/drivestore"
	"github.com/2beens/gymplan/internal/hevy"
	"github.com/2beens/gymplan/internal/logging"
	"github.com/2beens/gymplan/internal/pipeline"
	"github.com/2beens/gymplan/internal/plangen"
	"github.com/2beens/gymplan/internal/publish"
	"github.com/2beens/gymplan/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dryRun := flag.Bool("dry-run", false, "generate the plan but skip all Hevy writes")
	months := flag.Int("months", 0, "aggregation window in months (0 -> use config)")
	promptFile := flag.String("prompt-file", "", "path to the prompt template file (overrides config)")
	logsPath := flag.String("logs-path", "", "log file path (overrides config)")
	cleanFolder := flag.Int("clean-folder", 0, "delete all routines in the given Hevy folder id and exit")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if *dryRun {
		cfg.DryRun = true
	}
	if *months > 0 {
		cfg.AggregationMonths = *months
	}
	if *promptFile != "" {
		cfg.PromptFilePath = *promptFile
	}
	if *logsPath != "" {
		cfg.LogsPath = *logsPath
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: false,
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     sentryDSN,
	})

	hevyAPIKey := os.Getenv("GYMPLAN_HEVY_API_KEY")
	if hevyAPIKey == "" {
		log.Fatalf("hevy API key not set, use GYMPLAN_HEVY_API_KEY env var to set it")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, stopping ...", receivedSig)
		cancel()
	}()

	hevyClient := hevy.NewClient(cfg.HevyBaseURL, hevyAPIKey, &http.Client{
		Timeout: 30 * time.Second,
	})

	if *cleanFolder > 0 {
		deleted, err := publish.
			NewPublisher(hevyClient, cfg.BaseFolderName, cfg.DryRun).
			CleanFolder(ctx, *cleanFolder)
		if err != nil {
			log.Errorf("clean folder %d: %s", *cleanFolder, err)
		}
		log.Infof("deleted %d routines from folder %d", deleted, *cleanFolder)
		return
	}

	geminiAPIKey := os.Getenv("GYMPLAN_GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Fatalf("gemini API key not set, use GYMPLAN_GEMINI_API_KEY env var to set it")
	}

	gdCredsFile := os.Getenv("GYMPLAN_GD_CREDS_FILE")
	if gdCredsFile == "" {
		log.Fatalf("google drive credentials file not set, use GYMPLAN_GD_CREDS_FILE env var to set it")
	}
	gdCreds, err := os.ReadFile(gdCredsFile)
	if err != nil {
		log.Fatalf("read google drive credentials file: %s", err)
	}

	promptTemplate, err := os.ReadFile(cfg.PromptFilePath)
	if err != nil {
		log.Fatalf("read prompt template %s: %s", cfg.PromptFilePath, err)
	}

	dirExists, err := pkg.PathExists(cfg.LocalDataDir, true)
	if err != nil {
		log.Fatalf("check local data dir: %s", err)
	}
	if !dirExists {
		if err := os.MkdirAll(cfg.LocalDataDir, 0o755); err != nil {
			log.Fatalf("create local data dir %s: %s", cfg.LocalDataDir, err)
		}
		log.Printf("local data dir created: %s", cfg.LocalDataDir)
	}

	driveStore, err := drivestore.NewDriveStore(ctx, gdCreds)
	if err != nil {
		log.Fatalf("new drive store: %s", err)
	}
	resolver := drivestore.NewResolver(cfg.LocalDataDir, cfg.DriveFolderID, driveStore)

	generator, err := plangen.NewGenerator(ctx, geminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("new plan generator: %s", err)
	}

	if cfg.DryRun {
		log.Warnln("dry run mode, nothing will be uploaded to Hevy")
	}

	runner := pipeline.NewRunner(pipeline.RunnerParams{
		Catalog:          catalog.NewBootstrapper(resolver, hevyClient, cfg.CatalogDatasetName),
		Resolver:         resolver,
		Generator:        generator,
		Publisher:        publish.NewPublisher(hevyClient, cfg.BaseFolderName, cfg.DryRun),
		PromptTemplate:   string(promptTemplate),
		StatsDatasetName: cfg.StatsDatasetName,
		Months:           cfg.AggregationMonths,
	})

	report, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("pipeline run: %s", err)
	}

	if report.DryRun {
		fmt.Println("--- DRY RUN PAYLOAD ---")
		fmt.Println(string(report.Payload))
	}

	log.Infof("done, status: %s", report.Status())
}
