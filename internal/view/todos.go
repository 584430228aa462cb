package view

import (
	"fmt"
	"time"

	"github.com/idilsaglam/nasiya/internal/ledger"
	"github.com/idilsaglam/nasiya/internal/model"
)

const TodoPlaceholder = "Hozircha vazifalar yo'q"

type TodoRow struct {
	ID         int64
	Text       string
	Created    string
	Completed  bool
	ToggleHint string
}

type FilterTab struct {
	Filter model.Filter
	Label  string
	Active bool
}

type TodoPage struct {
	Rows        []TodoRow
	Tabs        []FilterTab
	Counts      ledger.TodoCounts
	Empty       bool
	Placeholder string
}

var filterNames = map[model.Filter]string{
	model.FilterAll:       "Hammasi",
	model.FilterPending:   "Bajarilmagan",
	model.FilterCompleted: "Bajarilgan",
}

// Todos builds the todo page. Dates are shown in now's location.
func Todos(todos []model.Todo, f model.Filter, now time.Time) TodoPage {
	counts := ledger.TodoCountsOf(todos)
	visible := ledger.FilterTodos(todos, f)

	page := TodoPage{
		Rows:   make([]TodoRow, 0, len(visible)),
		Counts: counts,
		Empty:  len(visible) == 0,
	}
	if page.Empty {
		page.Placeholder = TodoPlaceholder
	}
	for _, t := range visible {
		hint := "Bajarilgan deb belgilash"
		if t.Completed {
			hint = "Bajarilmagan deb belgilash"
		}
		page.Rows = append(page.Rows, TodoRow{
			ID:         t.ID,
			Text:       t.Text,
			Created:    FormatDate(t.CreatedAt.In(now.Location())),
			Completed:  t.Completed,
			ToggleHint: hint,
		})
	}
	for _, tf := range model.Filters {
		page.Tabs = append(page.Tabs, FilterTab{
			Filter: tf,
			Label:  fmt.Sprintf("%s (%d)", filterNames[tf], counts.Of(tf)),
			Active: tf == f,
		})
	}
	return page
}
