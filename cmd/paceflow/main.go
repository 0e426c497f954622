package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lenaweber/paceflow/internal/cli"
	"github.com/lenaweber/paceflow/internal/db"
	"github.com/lenaweber/paceflow/internal/repository"
	"github.com/lenaweber/paceflow/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.paceflow/paceflow.db
	dbPath := os.Getenv("PACEFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".paceflow", "paceflow.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	courseRepo := repository.NewSQLiteCourseRepo(database)
	paceRepo := repository.NewSQLitePaceRepo(database)
	blackoutRepo := repository.NewSQLiteBlackoutRepo(database)

	// Unit of work for the transactional course import
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Courses:   service.NewCourseService(courseRepo),
		Paces:     service.NewPaceService(paceRepo, blackoutRepo),
		Blackouts: service.NewBlackoutService(blackoutRepo),
		Import:    service.NewImportService(uow),
	}

	// Detect interactive terminal to gate the wizard and the pace editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
