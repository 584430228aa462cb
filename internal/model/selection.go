package model

import (
	"fmt"
	"strings"
)

// Filter selects which todos a view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all|pending|completed)", s)
}

// Match reports whether a todo with the given state belongs in the view.
func (f Filter) Match(completed bool) bool {
	switch f {
	case FilterPending:
		return !completed
	case FilterCompleted:
		return completed
	}
	return true
}

// SortKey orders the debt view.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

var SortKeys = []SortKey{SortByDate, SortByAmount}

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByDate, nil
	case SortByDate, SortByAmount:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort %q (want date|amount)", s)
}
