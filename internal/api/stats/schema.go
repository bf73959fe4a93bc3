package stats

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/omarshaarawi/nbacli/internal/models"
)

// resultSetSchema names a scoreboard result set. index is its position in
// responses that do not carry result set names.
type resultSetSchema struct {
	name  string
	index int
}

// column names a field within a result set row. index is its position in
// result sets that do not carry headers.
type column struct {
	name  string
	index int
}

var (
	gameHeaderSet    = resultSetSchema{name: "GameHeader", index: 0}
	lineScoreSet     = resultSetSchema{name: "LineScore", index: 1}
	eastStandingsSet = resultSetSchema{name: "EastConfStandingsByDay", index: 4}
	westStandingsSet = resultSetSchema{name: "WestConfStandingsByDay", index: 5}
)

var (
	colTeam   = column{name: "TEAM", index: 5}
	colWins   = column{name: "W", index: 7}
	colLosses = column{name: "L", index: 8}
	colWinPct = column{name: "W_PCT", index: 9}

	colStatusID    = column{name: "GAME_STATUS_ID", index: 3}
	colStatusText  = column{name: "GAME_STATUS_TEXT", index: 4}
	colBroadcaster = column{name: "NATL_TV_BROADCASTER_ABBREVIATION", index: 11}

	colAbbreviation = column{name: "TEAM_ABBREVIATION", index: 4}
	colRecord       = column{name: "TEAM_WINS_LOSSES", index: 6}
	colQuarters     = periodColumns("PTS_QTR", 7, models.RegulationPeriods)
	colOvertimes    = periodColumns("PTS_OT", 11, models.OvertimeSlots)
)

func periodColumns(prefix string, first, n int) []column {
	cols := make([]column, n)
	for i := range cols {
		cols[i] = column{name: fmt.Sprintf("%s%d", prefix, i+1), index: first + i}
	}
	return cols
}

// table is a result set bound to the way its columns are addressed.
type table struct {
	name    string
	headers map[string]int
	rows    [][]any
}

// findResultSet looks a result set up by name. Responses without any result
// set names fall back to the set's known position.
func findResultSet(resp *models.ScoreboardResponse, s resultSetSchema) (*table, bool) {
	named := false
	for i := range resp.ResultSets {
		if resp.ResultSets[i].Name == "" {
			continue
		}
		named = true
		if resp.ResultSets[i].Name == s.name {
			return newTable(s.name, &resp.ResultSets[i]), true
		}
	}
	if named || s.index >= len(resp.ResultSets) {
		return nil, false
	}
	return newTable(s.name, &resp.ResultSets[s.index]), true
}

func requireResultSet(resp *models.ScoreboardResponse, s resultSetSchema) (*table, error) {
	t, ok := findResultSet(resp, s)
	if !ok {
		return nil, mismatch(s.name, "", -1, "result set not found in %d result sets", len(resp.ResultSets))
	}
	return t, nil
}

func newTable(name string, rs *models.ResultSet) *table {
	t := &table{name: name, rows: rs.RowSet}
	if len(rs.Headers) > 0 {
		t.headers = make(map[string]int, len(rs.Headers))
		for i, h := range rs.Headers {
			t.headers[h] = i
		}
	}
	return t
}

func (t *table) value(row int, col column) (any, error) {
	idx := col.index
	if t.headers != nil {
		i, ok := t.headers[col.name]
		if !ok {
			return nil, mismatch(t.name, col.name, -1, "column missing from headers")
		}
		idx = i
	}
	r := t.rows[row]
	if idx >= len(r) {
		return nil, mismatch(t.name, col.name, row, "row has %d fields, need %d", len(r), idx+1)
	}
	return r[idx], nil
}

func (t *table) str(row int, col column) (string, error) {
	v, err := t.value(row, col)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// number returns a numeric field. Null counts as zero.
func (t *table) number(row int, col column) (float64, error) {
	v, err := t.value(row, col)
	if err != nil {
		return 0, err
	}
	switch v := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, mismatch(t.name, col.name, row, "invalid number %q", v.String())
		}
		return f, nil
	case float64:
		return v, nil
	default:
		return 0, mismatch(t.name, col.name, row, "expected a number, got %T", v)
	}
}

func (t *table) integer(row int, col column) (int, error) {
	f, err := t.number(row, col)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
