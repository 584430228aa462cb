package app

import "github.com/idilsaglam/nasiya/internal/ledger"

// Level classifies a notice the way the toast colours it.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelInfo
	LevelDanger
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelDanger:
		return "danger"
	}
	return "info"
}

// Notice is the user-facing outcome of an operation. Field is set on
// validation warnings so a form can move focus to the offending input.
type Notice struct {
	Level   Level
	Message string
	Field   ledger.Field
}

func success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }
func warning(msg string, f ledger.Field) Notice {
	return Notice{Level: LevelWarning, Message: msg, Field: f}
}

// IsWarning reports a rejected mutation.
func (n Notice) IsWarning() bool { return n.Level == LevelWarning }
