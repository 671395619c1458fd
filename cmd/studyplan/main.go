package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/service"
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

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plans:  service.NewPlanService(cfg.DefaultGrade, observers...),
		Config: cfg,
	}

	// The wizard only runs on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
