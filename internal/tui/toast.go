package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/ui"
)

const toastTTL = 3 * time.Second

// toast is the transient outcome line. Each one has its own id so a stale
// expiry tick never clears a newer toast.
type toast struct {
	id     uuid.UUID
	notice app.Notice
}

type toastExpiredMsg struct{ id uuid.UUID }

func expireToast(id uuid.UUID) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (t toast) view() string {
	th := ui.Current()
	switch t.notice.Level {
	case app.LevelSuccess:
		return th.Success.Render(th.SymOK + " " + t.notice.Message)
	case app.LevelWarning:
		return th.Warning.Render(th.SymWarn + " " + t.notice.Message)
	case app.LevelDanger:
		return th.Fail.Render(th.SymFail + " " + t.notice.Message)
	}
	return th.Info.Render(th.SymInfo + " " + t.notice.Message)
}
