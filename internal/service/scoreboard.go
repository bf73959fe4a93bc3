package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/nbacli/internal/format"
	"github.com/omarshaarawi/nbacli/internal/gamedate"
	"github.com/omarshaarawi/nbacli/internal/models"
)

type ScoreboardAPI interface {
	GetStandings(ctx context.Context, gameDate string, conference models.Conference) ([]models.TeamStanding, error)
	GetGames(ctx context.Context, gameDate string) ([]models.Game, error)
}

// Query narrows a request. The zero value means today and every team.
type Query struct {
	Date gamedate.Options
	Team string
}

type ScoreboardService struct {
	api ScoreboardAPI
	now func() time.Time
}

func NewScoreboardService(api ScoreboardAPI, now func() time.Time) *ScoreboardService {
	if now == nil {
		now = time.Now
	}
	return &ScoreboardService{api: api, now: now}
}

func (s *ScoreboardService) GetStandings(ctx context.Context, conference models.Conference, q Query) ([]format.Line, error) {
	date := gamedate.Resolve(s.now(), q.Date)
	slog.Debug("Fetching standings", "date", date, "conference", conference)

	standings, err := s.api.GetStandings(ctx, date, conference)
	if err != nil {
		return nil, fmt.Errorf("error fetching standings: %w", err)
	}

	ranked := format.Rank(standings)
	if q.Team != "" {
		filtered := ranked[:0]
		for _, r := range ranked {
			if matchTeam(q.Team, r.Team) {
				filtered = append(filtered, r)
			}
		}
		ranked = filtered
	}

	return format.StandingsTable(ranked), nil
}

func (s *ScoreboardService) GetGames(ctx context.Context, q Query) ([]format.Line, error) {
	date := gamedate.Resolve(s.now(), q.Date)
	slog.Debug("Fetching games", "date", date)

	games, err := s.api.GetGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error fetching games: %w", err)
	}

	if q.Team != "" {
		var filtered []models.Game
		for _, g := range games {
			if matchTeam(q.Team, g.Away.Abbreviation, g.Home.Abbreviation) {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) == 0 {
			return []format.Line{format.Notice(fmt.Sprintf("No games found for %q.", q.Team))}, nil
		}
		games = filtered
	}

	return format.Games(games), nil
}

func matchTeam(query string, names ...string) bool {
	for _, name := range names {
		if fuzzy.MatchFold(query, name) {
			return true
		}
	}
	return false
}
