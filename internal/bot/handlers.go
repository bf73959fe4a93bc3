package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/nbacli/internal/format"
	"github.com/omarshaarawi/nbacli/internal/models"
	"github.com/omarshaarawi/nbacli/internal/render"
	"github.com/omarshaarawi/nbacli/internal/service"
)

type Scoreboard interface {
	GetStandings(ctx context.Context, conference models.Conference, q service.Query) ([]format.Line, error)
	GetGames(ctx context.Context, q service.Query) ([]format.Line, error)
}

type Handler struct {
	scoreboard Scoreboard
}

func NewHandler(scoreboard Scoreboard) *Handler {
	return &Handler{scoreboard: scoreboard}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Welcome to nbacli! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/standings [east|west] - Conference standings\n/live [team] - Today's games"
	case "standings":
		h.handleStandings(ctx, &msg, args)
	case "live":
		h.handleLive(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleStandings(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	conference := models.ConferenceAll
	if args != "" {
		c, ok := models.ParseConference(args)
		if !ok {
			msg.Text = "Usage: /standings [east|west]"
			return
		}
		conference = c
	}

	lines, err := h.scoreboard.GetStandings(ctx, conference, service.Query{})
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
		return
	}
	msg.Text = CodeBlock(render.Plain(lines))
}

func (h *Handler) handleLive(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	lines, err := h.scoreboard.GetGames(ctx, service.Query{Team: args})
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching games: %v", err)
		return
	}
	msg.Text = CodeBlock(render.Plain(lines))
}
