package models

import "strings"

type Conference string

const (
	ConferenceEast Conference = "east"
	ConferenceWest Conference = "west"
	ConferenceAll  Conference = "all"
)

// ParseConference accepts east, west or all in any case.
func ParseConference(s string) (Conference, bool) {
	switch c := Conference(strings.ToLower(strings.TrimSpace(s))); c {
	case ConferenceEast, ConferenceWest, ConferenceAll:
		return c, true
	}
	return "", false
}

type TeamStanding struct {
	Team          string
	Wins          string
	Losses        string
	WinPercentage float64
	// WinPctLabel is the win percentage as printed.
	WinPctLabel   string
}

const (
	RegulationPeriods = 4
	OvertimeSlots     = 10
)

type GameLine struct {
	Abbreviation string
	Record       string
	Quarters     [RegulationPeriods]int
	Overtimes    [OvertimeSlots]int
}

// Final is the sum of every period the team scored in.
func (l GameLine) Final() int {
	total := 0
	for _, pts := range l.Quarters {
		total += pts
	}
	for _, pts := range l.Overtimes {
		total += pts
	}
	return total
}

type GameStatus int

const (
	GameStatusScheduled  GameStatus = 1
	GameStatusInProgress GameStatus = 2
	GameStatusFinal      GameStatus = 3
)

type GameInfo struct {
	Status      GameStatus
	StatusText  string
	Broadcaster string
}

type Game struct {
	Away GameLine
	Home GameLine
	Info *GameInfo
}

// OvertimePeriods reports how many overtime periods were played, taken as the
// last overtime slot in which either team has a nonzero score.
func (g Game) OvertimePeriods() int {
	for i := OvertimeSlots - 1; i >= 0; i-- {
		if g.Home.Overtimes[i] != 0 || g.Away.Overtimes[i] != 0 {
			return i + 1
		}
	}
	return 0
}
