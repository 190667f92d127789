package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leftover-labs/freedom-rate/internal/analytics"
	"github.com/leftover-labs/freedom-rate/internal/config"
	"github.com/leftover-labs/freedom-rate/internal/refdata"
	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/internal/server"
	"github.com/leftover-labs/freedom-rate/pkg/constants"
	"github.com/leftover-labs/freedom-rate/pkg/output"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to profile configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, pdf")
	outputFileFlag := flag.String("output-file", "", "destination file for the pdf output format")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	refDataFile := flag.String("refdata", "", "optional reference-data overlay file")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot computation")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *logLevel)
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	switch outputFormat {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatPDF:
	default:
		logger.Fatal(fmt.Sprintf("invalid output format %s", outputFormat),
			zap.String("op", "main"),
		)
	}

	catalog, err := refdata.NewCatalogFromOverlay(*refDataFile)
	if err != nil {
		logger.Fatal("failed to load reference data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration(catalog)
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	engine := scenario.NewEngine(catalog, logger)
	comparison := engine.Compare(conf.Profile, conf.Scenario.RelocationTarget, scenario.WhatIfDeltas{
		RemoteDays:  conf.Scenario.WhatIf.RemoteDays,
		RentDelta:   conf.Scenario.WhatIf.RentDelta,
		IncomeDelta: conf.Scenario.WhatIf.IncomeDelta,
	})

	// Record the snapshot; failure to record never affects the output.
	if conf.SessionID != "" {
		forwarder := analytics.NewForwarder(conf.Analytics.ForwardURL,
			time.Duration(conf.Analytics.TimeoutMS)*time.Millisecond, logger)
		forwarder.ForwardSync(analytics.Snapshot{
			SessionID: conf.SessionID,
			Inputs:    conf.Profile,
			Derived:   comparison.Current,
		})
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(comparison)
	case constants.OutputFormatCSV:
		output.CsvFormat(comparison)
	case constants.OutputFormatPDF:
		data, err := output.PdfFormat(comparison)
		if err != nil {
			logger.Fatal("failed to build PDF report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		destination := conf.Output.File
		if *outputFileFlag != "" {
			destination = *outputFileFlag
		}
		if destination == "" {
			destination = "freedom-rate-report.pdf"
		}
		if err := os.WriteFile(destination, data, 0644); err != nil {
			logger.Fatal("failed to write PDF report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote PDF report",
			zap.String("op", "main"),
			zap.String("file", destination),
		)
	}
}

func runServer(configLocation, logLevelOverride string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration\", \"error\": \"%v\"}\n", err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	catalog, err := refdata.NewCatalogFromOverlay(cfg.RefDataFile)
	if err != nil {
		logger.Fatal("failed to load reference data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	engine := scenario.NewEngine(catalog, logger)
	store := analytics.NewStore()
	forwarder := analytics.NewForwarder(cfg.ForwardURL, 0, logger)

	handler := server.NewHandler(logger, engine, store, forwarder, cfg.BodySizeBytes(), version)

	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
