package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/stuath/internal/app"
	"github.com/alexanderramin/stuath/internal/catalog"
	"github.com/alexanderramin/stuath/internal/cli"
	"github.com/alexanderramin/stuath/internal/config"
	"github.com/alexanderramin/stuath/internal/db"
	"github.com/alexanderramin/stuath/internal/repository"
	"github.com/alexanderramin/stuath/internal/scheduler"
	"github.com/alexanderramin/stuath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Fail early on a bad strategy rather than on the first submission.
	strategy := scheduler.SlotStrategy(cfg.SlotStrategy)
	if _, err := scheduler.NewSlotPicker(strategy, 0); err != nil {
		return err
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		cat = loaded
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	kv := repository.NewSQLiteKVStore(database)
	profileRepo := repository.NewKVProfileRepo(kv)
	prefRepo := repository.NewKVPreferenceRepo(kv)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	session := app.NewSession()
	derivation := service.NewDerivationService(profileRepo, session, cat, service.DerivationOptions{
		Delay: cfg.Delay,
		NewPicker: func() scheduler.SlotPicker {
			p, _ := scheduler.NewSlotPicker(strategy, cfg.EffectiveSeed())
			return p
		},
	}, observer)

	a := &cli.App{
		Derivation: derivation,
		Profiles:   service.NewProfileService(profileRepo),
		Prefs:      service.NewPreferenceService(prefRepo),
		Export:     service.NewExportService(session, observer),
		Reset:      service.NewResetService(uow, session, observer),
		Catalog:    cat,
		Lang:       cfg.Language,
		SystemLang: cfg.SystemLang,
		Stdin:      os.Stdin,
	}
	a.IsInteractive = isTerminal(os.Stdin) && isTerminal(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(a).ExecuteContext(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
