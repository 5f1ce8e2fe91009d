package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/elC0mpa/intra-logtime/service"
	"github.com/elC0mpa/intra-logtime/service/config"
	"github.com/elC0mpa/intra-logtime/service/daterange"
	"github.com/elC0mpa/intra-logtime/service/flag"
	"github.com/elC0mpa/intra-logtime/service/intra"
	"github.com/elC0mpa/intra-logtime/service/orchestrator"
	"github.com/elC0mpa/intra-logtime/utils"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flagService := flag.NewService(stdout)
	flags, err := flagService.GetParsedFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, flagService.Usage())
		return 1
	}

	interactive := isTerminal(stdout)

	cfg, err := config.NewService().GetConfig()
	if err != nil {
		return fail(stderr, flags, interactive, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if flags.Verbose {
		observer = service.NewLogUseCaseObserver(stderr, slog.LevelDebug)
	}

	if interactive && !flags.GUI {
		utils.DrawBanner(stdout)
		utils.StartSpinner(stderr)
	}
	defer utils.StopSpinner()

	orchestratorService := orchestrator.NewService(
		cfg,
		daterange.NewService(cfg.AnchorDay),
		intra.NewService(cfg, nil),
		orchestrator.WithObserver(observer),
		orchestrator.WithBeforeRender(utils.StopSpinner),
	)

	err = orchestratorService.Orchestrate(ctx, flags, renderers(flags, cfg, stdout, interactive)...)
	if err != nil {
		utils.StopSpinner()
		return fail(stderr, flags, interactive, err)
	}

	return 0
}

func renderers(flags model.Flags, cfg model.Config, stdout io.Writer, interactive bool) []service.Renderer {
	if flags.GUI {
		return []service.Renderer{utils.NewWindowRenderer(cfg.Milestones)}
	}

	selected := []service.Renderer{
		utils.NewProgressRenderer(stdout, cfg.Milestones, interactive && !flags.NoAnimation),
	}
	if flags.Table {
		selected = append(selected, utils.NewDailyTableRenderer(stdout))
	}
	if flags.Chart {
		selected = append(selected, utils.NewDailyChartRenderer(stdout))
	}

	return selected
}

func fail(stderr io.Writer, flags model.Flags, interactive bool, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if flags.GUI && interactive {
		if dialogErr := utils.ShowErrorDialog(err); dialogErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", dialogErr)
		}
	}
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
