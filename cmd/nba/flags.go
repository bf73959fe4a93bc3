package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/omarshaarawi/nbacli/internal/models"
	"github.com/spf13/pflag"
)

type command int

const (
	commandUsage command = iota
	commandStandings
	commandLive
	commandBot
)

type options struct {
	standings  bool
	conference conferenceFlag
	live       bool
	team       string
	watch      bool
	telegram   bool
	serveBot   bool
	noColor    bool
	usage      string
}

// conferenceFlag accepts exactly East, West, east or west.
type conferenceFlag struct {
	value models.Conference
	set   bool
}

func (c *conferenceFlag) String() string {
	return string(c.value)
}

func (c *conferenceFlag) Set(s string) error {
	switch s {
	case "East", "West", "east", "west":
		c.value = models.Conference(strings.ToLower(s))
		c.set = true
		return nil
	}
	return fmt.Errorf("must be one of East, West, east, west")
}

func (c *conferenceFlag) Type() string {
	return "conference"
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := pflag.NewFlagSet("nba", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVarP(&o.standings, "standings", "s", false, "Standings for a conference")
	fs.VarP(&o.conference, "conference", "c", "Choose a conference, East or West")
	fs.BoolVar(&o.live, "live", false, "Today's games and scores")
	fs.StringVarP(&o.team, "team", "t", "", "Only show teams matching this name")
	fs.BoolVarP(&o.watch, "watch", "w", false, "Keep refreshing live scores (with --live)")
	fs.BoolVar(&o.telegram, "telegram", false, "Also send the output to the configured Telegram chat")
	fs.BoolVar(&o.serveBot, "bot", false, "Answer Telegram commands until interrupted")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.usage = fs.FlagUsages()
	return &o, nil
}

// command picks what to run. Standings win over live, live over bot.
func (o *options) command() (command, models.Conference) {
	switch {
	case o.standings && o.conference.set:
		return commandStandings, o.conference.value
	case o.standings:
		return commandStandings, models.ConferenceAll
	case o.live:
		return commandLive, ""
	case o.serveBot:
		return commandBot, ""
	default:
		return commandUsage, ""
	}
}
