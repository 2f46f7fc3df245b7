package nbaapi

import (
	"fmt"
	"strconv"
)

// stats.nba.com returns tables as parallel headers/rowSet arrays:
//
//	{"resultSets":[{"name":"...","headers":["A","B"],"rowSet":[[1,"x"]]}]}
//
// response/resultSet/row decode that shape into keyed access.
type response struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r response) set(name string) (resultSet, error) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return resultSet{}, fmt.Errorf("result set %q missing", name)
}

type row struct {
	index  map[string]int
	values []any
}

func (rs resultSet) rows() []row {
	index := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		index[h] = i
	}
	rows := make([]row, 0, len(rs.RowSet))
	for _, values := range rs.RowSet {
		if len(values) != len(rs.Headers) {
			continue
		}
		rows = append(rows, row{index: index, values: values})
	}
	return rows
}

func (r row) str(key string) string {
	i, ok := r.index[key]
	if !ok {
		return ""
	}
	s, _ := r.values[i].(string)
	return s
}

func (r row) float(key string) (float64, bool) {
	i, ok := r.index[key]
	if !ok {
		return 0, false
	}
	switch v := r.values[i].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// int handles the API's habit of sending years as strings and IDs as
// JSON numbers.
func (r row) int(key string) (int, bool) {
	f, ok := r.float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}
