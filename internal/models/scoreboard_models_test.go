package models

import "testing"

func TestParseConference(t *testing.T) {
	tests := []struct {
		in     string
		want   Conference
		wantOK bool
	}{
		{"east", ConferenceEast, true},
		{"East", ConferenceEast, true},
		{"WEST", ConferenceWest, true},
		{"all", ConferenceAll, true},
		{" west ", ConferenceWest, true},
		{"central", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseConference(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseConference(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGameLineFinal(t *testing.T) {
	line := GameLine{Quarters: [RegulationPeriods]int{25, 24, 23, 22}}
	if got := line.Final(); got != 94 {
		t.Errorf("Final() = %d, want 94", got)
	}

	line.Overtimes[0] = 8
	line.Overtimes[1] = 5
	if got := line.Final(); got != 107 {
		t.Errorf("Final() with overtime = %d, want 107", got)
	}
}

func TestOvertimePeriods(t *testing.T) {
	tests := []struct {
		name string
		home [OvertimeSlots]int
		away [OvertimeSlots]int
		want int
	}{
		{"regulation", [OvertimeSlots]int{}, [OvertimeSlots]int{}, 0},
		{"single overtime", [OvertimeSlots]int{10}, [OvertimeSlots]int{8}, 1},
		{"triple overtime", [OvertimeSlots]int{10, 6, 9}, [OvertimeSlots]int{10, 6, 4}, 3},
		{"home scoreless in last overtime", [OvertimeSlots]int{7, 0}, [OvertimeSlots]int{7, 5}, 2},
		{"all ten slots", [OvertimeSlots]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, [OvertimeSlots]int{}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Game{Home: GameLine{Overtimes: tt.home}, Away: GameLine{Overtimes: tt.away}}
			if got := g.OvertimePeriods(); got != tt.want {
				t.Errorf("OvertimePeriods() = %d, want %d", got, tt.want)
			}
		})
	}
}
