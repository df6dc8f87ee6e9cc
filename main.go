package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/insightdelivered/camt-statement-converter/internal/api"
	"github.com/insightdelivered/camt-statement-converter/internal/camt"
	"github.com/insightdelivered/camt-statement-converter/internal/config"
	"github.com/insightdelivered/camt-statement-converter/internal/writer"
)

const version = api.Version

func main() {
	// CLI flags
	currencyFlag := flag.String("currency", "", "Default currency when the statement has no account currency (overrides CAMT_CURRENCY)")
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .csv extension)")
	headerFlag := flag.Bool("header", true, "Include account metadata header rows in CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for -serve (overrides CAMT_ADDR)")
	envFlag := flag.String("env", ".env", "Optional .env file to load")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ISO 20022 camt.053 Statement Converter

Converts camt.053 bank-to-customer statement XML files into CSV.

Usage:
  camt-statement-converter [flags] <statement.xml> [statement2.xml ...]
  camt-statement-converter -serve [-addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a statement
  camt-statement-converter statement.xml

  # Statement without an account currency
  camt-statement-converter --currency=CHF statement.xml

  # Custom output path
  camt-statement-converter --output=transactions.csv statement.xml

Environment:
  CAMT_CURRENCY   default currency
  CAMT_ADDR       listen address for -serve
  CAMT_STATIC_DIR frontend files served by -serve
  CAMT_LOG_LEVEL  debug, info, warn or error
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("camt-statement-converter v%s\n", version)
		os.Exit(0)
	}

	if *helpFlag || (flag.NArg() == 0 && !*serveFlag) {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fatalf("Configuration error: %v\n", err)
	}
	if *currencyFlag != "" {
		cfg.Currency = strings.ToUpper(*currencyFlag)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *verboseFlag {
		cfg.LogLevel = zapcore.DebugLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	if *serveFlag {
		if err := serve(cfg, logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	inputFiles := flag.Args()
	if len(inputFiles) > 1 && *outputFlag != "" {
		fatalf("--output can only be used with a single input file\n")
	}

	p := camt.NewParser(cfg.Currency, logger)
	for _, inputPath := range inputFiles {
		if err := processFile(p, inputPath, *outputFlag, *headerFlag, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	app := api.NewApp(&api.Handler{
		Currency:  cfg.Currency,
		StaticDir: cfg.StaticDir,
		Logger:    logger,
	})
	logger.Info("starting server", zap.String("addr", cfg.Addr), zap.String("default_currency", cfg.Currency))
	return app.Listen(cfg.Addr)
}

func processFile(p *camt.Parser, inputPath, outputPath string, includeHeader bool, logger *zap.Logger) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".xml" {
		return fmt.Errorf("expected .xml file, got %q", ext)
	}

	log := logger.With(zap.String("input", inputPath))
	log.Info("processing statement")

	st, err := p.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	log.Info("statement parsed",
		zap.String("account", st.AccountID),
		zap.String("currency", st.Currency),
		zap.Int("lines", len(st.Lines)))

	if len(st.Lines) == 0 {
		log.Warn("no lines found in the statement currency")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ".csv"
	}

	w := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := w.WriteToFile(outPath, st); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	// Print summary
	fmt.Printf("%s -> %s\n", inputPath, outPath)
	fmt.Printf("  Account:  %s\n", st.AccountID)
	if st.BankID != "" {
		fmt.Printf("  Bank:     %s\n", st.BankID)
	}
	fmt.Printf("  Opening:  %s %s (%s)\n", st.StartBalance.StringFixed(2), st.Currency, st.StartDate.Format("2006-01-02"))
	fmt.Printf("  Closing:  %s %s (%s)\n", st.EndBalance.StringFixed(2), st.Currency, st.EndDate.Format("2006-01-02"))
	fmt.Printf("  Lines:    %d\n", len(st.Lines))
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
