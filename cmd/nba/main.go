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
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/omarshaarawi/nbacli/internal/api/stats"
	"github.com/omarshaarawi/nbacli/internal/bot"
	"github.com/omarshaarawi/nbacli/internal/config"
	"github.com/omarshaarawi/nbacli/internal/format"
	"github.com/omarshaarawi/nbacli/internal/models"
	"github.com/omarshaarawi/nbacli/internal/render"
	"github.com/omarshaarawi/nbacli/internal/repository/memory"
	"github.com/omarshaarawi/nbacli/internal/scheduler"
	"github.com/omarshaarawi/nbacli/internal/service"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], colorable.NewColorableStdout(), os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("Error running application", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if err := setupLogger(cfg.LogLevel, stderr); err != nil {
		return err
	}

	colorize := false
	if !opts.noColor {
		colorize, err = render.ShouldColorize(cfg.Output.Color, os.Stdout)
		if err != nil {
			return err
		}
	}

	statsAPI := stats.NewAPI(stats.NewClient(cfg.StatsAPI))
	scoreboard := service.NewScoreboardService(statsAPI, time.Now)

	a := &app{
		scoreboard: scoreboard,
		renderer:   render.New(colorize),
		out:        stdout,
		repo:       memory.NewRepository(),
		interval:   cfg.Output.WatchInterval,
	}

	cmd, conference := opts.command()
	if cmd == commandUsage {
		fmt.Fprintf(stderr, "Usage of nba:\n%s", opts.usage)
		return nil
	}

	if opts.telegram || cmd == commandBot {
		if cfg.TelegramBot.Token == "" {
			return errors.New("TELEGRAM_TOKEN is required for --telegram and --bot")
		}
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, scoreboard)
		if err != nil {
			return fmt.Errorf("error starting telegram bot: %w", err)
		}
		if opts.telegram {
			a.notifier = telegramBot
		}
		if cmd == commandBot {
			return telegramBot.Start(ctx)
		}
	}

	q := service.Query{Team: opts.team}
	switch {
	case cmd == commandStandings:
		return a.standings(ctx, conference, q)
	case opts.watch:
		return a.watch(ctx, q)
	default:
		return a.live(ctx, q)
	}
}

func setupLogger(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

type notifier interface {
	SendMessage(text string) error
}

type app struct {
	scoreboard *service.ScoreboardService
	renderer   *render.Renderer
	out        io.Writer
	notifier   notifier
	repo       *memory.Repository
	interval   time.Duration
}

func (a *app) standings(ctx context.Context, conference models.Conference, q service.Query) error {
	lines, err := a.scoreboard.GetStandings(ctx, conference, q)
	if err != nil {
		return err
	}
	return a.emit(lines)
}

func (a *app) live(ctx context.Context, q service.Query) error {
	lines, err := a.scoreboard.GetGames(ctx, q)
	if err != nil {
		return err
	}
	return a.emit(lines)
}

// watch reprints the games whenever they change until ctx is cancelled.
func (a *app) watch(ctx context.Context, q service.Query) error {
	sched, err := scheduler.NewScheduler(a.interval, func(ctx context.Context) error {
		lines, err := a.scoreboard.GetGames(ctx, q)
		if err != nil {
			return err
		}
		if !a.repo.Update("live", render.Plain(lines), time.Now()) {
			slog.Debug("Scores unchanged")
			return nil
		}
		return a.emit(lines)
	})
	if err != nil {
		return err
	}

	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")
	return nil
}

func (a *app) emit(lines []format.Line) error {
	if err := a.renderer.Render(a.out, lines); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	if a.notifier != nil {
		if err := a.notifier.SendMessage(render.Plain(lines)); err != nil {
			return err
		}
	}
	return nil
}
