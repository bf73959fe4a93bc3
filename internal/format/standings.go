package format

import (
	"sort"
	"strconv"

	"github.com/omarshaarawi/nbacli/internal/models"
)

// PlayoffSeeds is the last rank styled as a playoff team, whatever the
// number of teams listed.
const PlayoffSeeds = 8

const (
	rankWidth = 4
	teamWidth = 24
	wlWidth   = 4
	pctWidth  = 6
)

type RankedStanding struct {
	Rank int
	models.TeamStanding
}

// Rank stable-sorts standings by win percentage, best first, and numbers
// them from 1. Ties keep their input order.
func Rank(standings []models.TeamStanding) []RankedStanding {
	sorted := make([]models.TeamStanding, len(standings))
	copy(sorted, standings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WinPercentage > sorted[j].WinPercentage
	})

	ranked := make([]RankedStanding, len(sorted))
	for i, s := range sorted {
		ranked[i] = RankedStanding{Rank: i + 1, TeamStanding: s}
	}
	return ranked
}

func Standings(standings []models.TeamStanding) []Line {
	return StandingsTable(Rank(standings))
}

// StandingsTable renders a header line followed by one line per team.
func StandingsTable(ranked []RankedStanding) []Line {
	lines := make([]Line, 0, len(ranked)+1)
	lines = append(lines, Line{
		Style: StyleHeader,
		Cells: []Cell{
			left("#", rankWidth),
			left("Team", teamWidth),
			right("W", wlWidth),
			right("L", wlWidth),
			right("Win%", pctWidth),
		},
	})

	for _, r := range ranked {
		lines = append(lines, Line{
			Style: rankStyle(r.Rank),
			Cells: []Cell{
				left(strconv.Itoa(r.Rank), rankWidth),
				left(r.Team, teamWidth),
				right(r.Wins, wlWidth),
				right(r.Losses, wlWidth),
				right(r.WinPctLabel, pctWidth),
			},
		})
	}

	return lines
}

func rankStyle(rank int) Style {
	if rank <= PlayoffSeeds {
		return StylePlayoff
	}
	return StyleLottery
}
