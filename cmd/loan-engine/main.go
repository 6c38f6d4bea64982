package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kopaflow/loan-engine/internal/batch"
	"github.com/kopaflow/loan-engine/internal/config"
	"github.com/kopaflow/loan-engine/internal/portfolio"
	"github.com/kopaflow/loan-engine/pkg/constants"
	"github.com/kopaflow/loan-engine/pkg/datetime"
	"github.com/kopaflow/loan-engine/pkg/format"
	"github.com/kopaflow/loan-engine/pkg/frequency"
	"github.com/kopaflow/loan-engine/pkg/loan"
	"github.com/kopaflow/loan-engine/pkg/origination"
	"github.com/kopaflow/loan-engine/pkg/output"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

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

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
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
		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

// previewFlags holds the loan parameters for schedule preview mode.
type previewFlags struct {
	principal    *float64
	rate         *float64
	method       *string
	freq         *string
	disbursed    *string
	maturity     *string
	graceMonths  *int
	outputFormat *string
}

// runPreview runs the approval-time pipeline against CLI parameters and
// writes the resulting schedule to stdout.
func runPreview(logger *zap.Logger, conf *config.Configuration, flags previewFlags) {
	method, err := loan.ParseInterestMethod(*flags.method)
	if err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}
	freq, err := frequency.Parse(*flags.freq)
	if err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}
	disbursed, err := datetime.ParseDate(*flags.disbursed)
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid disbursement date %s", *flags.disbursed),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	maturity, err := datetime.ParseDate(*flags.maturity)
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid maturity date %s", *flags.maturity),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	pipeline := origination.NewPipeline(conf.Bounds(), logger)
	terms, entries, err := pipeline.Prepare(origination.Application{
		Principal:          *flags.principal,
		AnnualInterestRate: *flags.rate,
		InterestMethod:     method,
		Frequency:          freq,
		DisbursementDate:   disbursed,
		MaturityDate:       maturity,
		GracePeriodMonths:  *flags.graceMonths,
	})
	if err != nil {
		logger.Fatal("loan approval rejected",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	logger.Info("computed repayment terms",
		zap.String("op", "main"),
		zap.Int("installments", terms.InstallmentCount),
		zap.String("totalInterest", format.MoneyIn(terms.TotalInterest, conf.Currency)),
		zap.String("totalToRepay", format.MoneyIn(terms.TotalToRepay, conf.Currency)),
		zap.String("periodicInstallment", format.MoneyIn(terms.PeriodicInstallment, conf.Currency)),
	)

	switch *flags.outputFormat {
	case "csv":
		output.CsvSchedule(os.Stdout, entries)
	default:
		output.PrettySchedule(os.Stdout, entries)
	}
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	portfolioPath := flag.String("portfolio", "", "path to JSON portfolio snapshot")
	asOfFlag := flag.String("as-of", "", "valuation date (YYYY-MM-DD), defaults to today")
	cronSpec := flag.String("schedule", "", "cron expression; when set, run the batch on this cadence instead of once")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	preview := flag.Bool("preview", false, "compute and print a repayment schedule instead of running the batch")
	previewParams := previewFlags{
		principal:    flag.Float64("principal", 0, "preview: loan principal"),
		rate:         flag.Float64("rate", 0, "preview: annual interest rate in percent"),
		method:       flag.String("method", "FLAT", "preview: interest method (FLAT, REDUCING_BALANCE)"),
		freq:         flag.String("frequency", "MONTHLY", "preview: repayment frequency"),
		disbursed:    flag.String("disbursed", "", "preview: disbursement date (YYYY-MM-DD)"),
		maturity:     flag.String("maturity", "", "preview: maturity date (YYYY-MM-DD)"),
		graceMonths:  flag.Int("grace", 0, "preview: grace period in months"),
		outputFormat: flag.String("output-format", "pretty", "preview output: pretty, csv"),
	}
	flag.Parse()

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

	if *preview {
		runPreview(logger, conf, previewParams)
		return
	}

	if *portfolioPath == "" {
		logger.Fatal("no portfolio snapshot provided, use -portfolio",
			zap.String("op", "main"),
		)
	}

	if _, err := conf.ProvisioningPolicy(); err != nil {
		logger.Fatal("invalid provisioning configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var fixedAsOf time.Time
	if *asOfFlag != "" {
		fixedAsOf, err = datetime.ParseDate(*asOfFlag)
		if err != nil {
			logger.Fatal(fmt.Sprintf("invalid as-of date %s", *asOfFlag),
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// -as-of pins the valuation date; otherwise each run values at its own
	// start time.
	valuationDate := func() time.Time {
		if !fixedAsOf.IsZero() {
			return fixedAsOf
		}
		return time.Now()
	}

	engine := batch.NewEngine(logger, conf.Batch.Workers)

	runOnce := func(asOf time.Time) {
		loans, err := portfolio.Load(*portfolioPath)
		if err != nil {
			logger.Error("failed to load portfolio snapshot",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return
		}

		summary := engine.Run(loans, asOf)
		logger.Info("accrual summary",
			zap.String("op", "main"),
			zap.String("asOf", asOf.Format(datetime.DateLayout)),
			zap.Int("loansProcessed", summary.LoansProcessed),
			zap.Int("loansSkipped", summary.LoansSkipped),
			zap.Int("loansWithStatusChange", summary.LoansWithStatusChange),
			zap.String("totalInterestAccrued", format.MoneyIn(summary.TotalInterestAccrued, conf.Currency)),
		)
		for _, loanErr := range summary.Errors {
			logger.Warn("loan failed during batch",
				zap.String("op", "main"),
				zap.String("loanId", loanErr.LoanID.String()),
				zap.String("message", loanErr.Message),
			)
		}
	}

	if *cronSpec == "" {
		runOnce(valuationDate())
		return
	}

	// Daemon mode: the engine itself never decides when accrual runs, so the
	// cadence comes in from the CLI and each tick values the portfolio as of
	// that day. Each tick runs in its own goroutine, so the valuation date
	// stays local to the tick.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(*cronSpec, func() {
		runOnce(valuationDate())
	})
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid cron schedule %q", *cronSpec),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	scheduler.Start()
	logger.Info(fmt.Sprintf("accrual daemon started with schedule %q", *cronSpec),
		zap.String("op", "main"),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	<-scheduler.Stop().Done()
}
