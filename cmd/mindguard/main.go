package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/mindguard/internal/classifier"
	"github.com/alexanderramin/mindguard/internal/cli"
	"github.com/alexanderramin/mindguard/internal/db"
	"github.com/alexanderramin/mindguard/internal/repository"
	"github.com/alexanderramin/mindguard/internal/risk"
	"github.com/alexanderramin/mindguard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The journal lives in memory for the session; MINDGUARD_DB points
	// it at a file for debugging.
	dbPath := os.Getenv("MINDGUARD_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening journal database: %w", err)
	}
	defer database.Close()

	journalRepo := repository.NewSQLiteJournalRepo(database)

	// The classifier client is built once and shared read-only across
	// all analyze calls; model state never reinitializes per request.
	clfCfg := classifier.LoadConfig()
	var observer classifier.Observer = classifier.NoopObserver{}
	if clfCfg.LogCalls {
		observer = classifier.NewLogObserver(os.Stderr)
	}
	clf := classifier.New(clfCfg, observer)

	advice, err := risk.LoadAdviceTable()
	if err != nil {
		return fmt.Errorf("loading advice table: %w", err)
	}
	scorer := risk.NewScorer(clf, risk.LoadCrisisKeywords(), risk.NegativeEmotions())

	app := &cli.App{
		Analysis: service.NewAnalysisService(scorer, advice, journalRepo),
		Journal:  service.NewJournalService(journalRepo),
		Report:   service.NewReportService(journalRepo),
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
