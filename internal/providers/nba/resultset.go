package nba

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// statsResponse is the tabular envelope used by stats.nba.com endpoints.
// Most endpoints send "resultSets"; a few send a single "resultSet".
type statsResponse struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// set returns the named result set, or the first one when name is empty.
func (r statsResponse) set(name string) (resultSet, bool) {
	all := r.ResultSets
	if r.ResultSet != nil {
		all = append([]resultSet{*r.ResultSet}, all...)
	}
	for _, s := range all {
		if name == "" || strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return resultSet{}, false
}

// rows zips each row with the headers. Short rows leave trailing columns absent.
func (s resultSet) rows() []row {
	out := make([]row, 0, len(s.RowSet))
	for _, values := range s.RowSet {
		r := make(row, len(s.Headers))
		for i, header := range s.Headers {
			if i < len(values) {
				r[header] = values[i]
			}
		}
		out = append(out, r)
	}
	return out
}

// row is one header-keyed record from a result set. Accessors never fail.
type row map[string]any

// String renders the column as text; numbers keep their literal form.
func (r row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Int reads a column as an integer, accepting numeric strings. NaN, infinities
// and non-numeric values report false.
func (r row) Int(key string) (int, bool) {
	var f float64
	switch v := r[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// IntOr reads a column as an integer with a default.
func (r row) IntOr(key string, fallback int) int {
	if v, ok := r.Int(key); ok {
		return v
	}
	return fallback
}
