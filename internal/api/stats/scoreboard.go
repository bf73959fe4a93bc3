package stats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/omarshaarawi/nbacli/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetScoreboard(ctx context.Context, gameDate string) (*models.ScoreboardResponse, error) {
	var resp models.ScoreboardResponse
	params := map[string]string{
		"LeagueID":  a.client.Config.LeagueID,
		"GameDate":  gameDate,
		"DayOffset": strconv.Itoa(a.client.Config.DayOffset),
	}

	if err := a.client.Get(ctx, "scoreboard", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	return &resp, nil
}

func (a *API) GetStandings(ctx context.Context, gameDate string, conference models.Conference) ([]models.TeamStanding, error) {
	resp, err := a.GetScoreboard(ctx, gameDate)
	if err != nil {
		return nil, err
	}

	standings, err := parseStandings(resp, conference)
	if err != nil {
		return nil, fmt.Errorf("parsing standings: %w", err)
	}

	return standings, nil
}

func (a *API) GetGames(ctx context.Context, gameDate string) ([]models.Game, error) {
	resp, err := a.GetScoreboard(ctx, gameDate)
	if err != nil {
		return nil, err
	}

	games, err := parseGames(resp)
	if err != nil {
		return nil, fmt.Errorf("parsing games: %w", err)
	}

	return games, nil
}

func parseStandings(resp *models.ScoreboardResponse, conference models.Conference) ([]models.TeamStanding, error) {
	switch conference {
	case models.ConferenceEast:
		return conferenceStandings(resp, eastStandingsSet)
	case models.ConferenceWest:
		return conferenceStandings(resp, westStandingsSet)
	case models.ConferenceAll:
		east, err := conferenceStandings(resp, eastStandingsSet)
		if err != nil {
			return nil, err
		}
		west, err := conferenceStandings(resp, westStandingsSet)
		if err != nil {
			return nil, err
		}
		return interleave(east, west)
	default:
		return nil, fmt.Errorf("unknown conference %q", conference)
	}
}

// interleave pairs the two conferences row by row: east[0], west[0], east[1], ...
func interleave(east, west []models.TeamStanding) ([]models.TeamStanding, error) {
	if len(east) != len(west) {
		return nil, mismatch(westStandingsSet.name, "", -1,
			"east has %d teams but west has %d", len(east), len(west))
	}

	all := make([]models.TeamStanding, 0, len(east)+len(west))
	for i := range east {
		all = append(all, east[i], west[i])
	}
	return all, nil
}

func conferenceStandings(resp *models.ScoreboardResponse, s resultSetSchema) ([]models.TeamStanding, error) {
	t, err := requireResultSet(resp, s)
	if err != nil {
		return nil, err
	}

	standings := make([]models.TeamStanding, len(t.rows))
	for i := range t.rows {
		team, err := t.str(i, colTeam)
		if err != nil {
			return nil, err
		}
		wins, err := t.str(i, colWins)
		if err != nil {
			return nil, err
		}
		losses, err := t.str(i, colLosses)
		if err != nil {
			return nil, err
		}
		pct, err := t.number(i, colWinPct)
		if err != nil {
			return nil, err
		}

		standings[i] = models.TeamStanding{
			Team:          team,
			Wins:          wins,
			Losses:        losses,
			WinPercentage: pct,
			WinPctLabel:   strconv.FormatFloat(pct, 'f', -1, 64),
		}
	}

	return standings, nil
}

func parseGames(resp *models.ScoreboardResponse) ([]models.Game, error) {
	lines, err := requireResultSet(resp, lineScoreSet)
	if err != nil {
		return nil, err
	}
	if len(lines.rows)%2 != 0 {
		return nil, mismatch(lines.name, "", -1, "odd number of line score rows (%d)", len(lines.rows))
	}

	games := make([]models.Game, len(lines.rows)/2)
	for i := range games {
		away, err := gameLine(lines, 2*i)
		if err != nil {
			return nil, err
		}
		home, err := gameLine(lines, 2*i+1)
		if err != nil {
			return nil, err
		}
		games[i] = models.Game{Away: away, Home: home}
	}

	header, ok := findResultSet(resp, gameHeaderSet)
	if !ok {
		return games, nil
	}
	if len(header.rows) != len(games) {
		return nil, mismatch(header.name, "", -1,
			"%d game header rows for %d games", len(header.rows), len(games))
	}
	for i := range games {
		info, err := gameInfo(header, i)
		if err != nil {
			return nil, err
		}
		games[i].Info = info
	}

	return games, nil
}

func gameLine(t *table, row int) (models.GameLine, error) {
	var line models.GameLine
	var err error

	if line.Abbreviation, err = t.str(row, colAbbreviation); err != nil {
		return line, err
	}
	if line.Record, err = t.str(row, colRecord); err != nil {
		return line, err
	}
	for i, col := range colQuarters {
		if line.Quarters[i], err = t.integer(row, col); err != nil {
			return line, err
		}
	}
	for i, col := range colOvertimes {
		if line.Overtimes[i], err = t.integer(row, col); err != nil {
			return line, err
		}
	}

	return line, nil
}

func gameInfo(t *table, row int) (*models.GameInfo, error) {
	status, err := t.integer(row, colStatusID)
	if err != nil {
		return nil, err
	}
	text, err := t.str(row, colStatusText)
	if err != nil {
		return nil, err
	}
	broadcaster, err := t.str(row, colBroadcaster)
	if err != nil {
		return nil, err
	}

	return &models.GameInfo{
		Status:      models.GameStatus(status),
		StatusText:  text,
		Broadcaster: broadcaster,
	}, nil
}
