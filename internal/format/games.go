package format

import (
	"fmt"
	"strconv"

	"github.com/omarshaarawi/nbacli/internal/models"
)

const (
	abbrWidth   = 5
	periodWidth = 4
	finalWidth  = 6
)

func Games(games []models.Game) []Line {
	if len(games) == 0 {
		return []Line{text("No games scheduled.")}
	}

	var lines []Line
	for i, g := range games {
		if i > 0 {
			lines = append(lines, Line{})
		}
		lines = append(lines, gameHeader(g))
		lines = append(lines, gameBody(g)...)
	}
	return lines
}

func gameHeader(g models.Game) Line {
	l := text(fmt.Sprintf("%s (%s) @ %s (%s)",
		g.Away.Abbreviation, g.Away.Record, g.Home.Abbreviation, g.Home.Record))
	l.Style = StyleHeader
	return l
}

func gameBody(g models.Game) []Line {
	if g.Info == nil {
		return nil
	}

	switch g.Info.Status {
	case models.GameStatusScheduled:
		s := "Starts at " + g.Info.StatusText
		if g.Info.Broadcaster != "" {
			s += " on " + g.Info.Broadcaster
		}
		return []Line{text(s)}
	case models.GameStatusInProgress:
		return []Line{text("Game in progress")}
	case models.GameStatusFinal:
		return Boxscore(g)
	default:
		if g.Info.StatusText == "" {
			return nil
		}
		return []Line{text(g.Info.StatusText)}
	}
}

// Boxscore lays out Q1..Q4, one column per overtime played, and the final
// score, then the away and home score lines.
func Boxscore(g models.Game) []Line {
	overtimes := g.OvertimePeriods()

	header := []Cell{left("", abbrWidth)}
	for q := 1; q <= models.RegulationPeriods; q++ {
		header = append(header, right("Q"+strconv.Itoa(q), periodWidth))
	}
	for ot := 1; ot <= overtimes; ot++ {
		header = append(header, right(overtimeLabel(ot), periodWidth))
	}
	header = append(header, right("Final", finalWidth))

	return []Line{
		{Cells: header},
		scoreLine(g.Away, overtimes),
		scoreLine(g.Home, overtimes),
	}
}

func scoreLine(l models.GameLine, overtimes int) Line {
	cells := []Cell{left(l.Abbreviation, abbrWidth)}
	for _, pts := range l.Quarters {
		cells = append(cells, right(strconv.Itoa(pts), periodWidth))
	}
	for _, pts := range l.Overtimes[:overtimes] {
		cells = append(cells, right(strconv.Itoa(pts), periodWidth))
	}
	cells = append(cells, right(strconv.Itoa(l.Final()), finalWidth))
	return Line{Cells: cells}
}

func overtimeLabel(n int) string {
	if n == 1 {
		return "OT"
	}
	return strconv.Itoa(n) + "OT"
}
