package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/nasiya/internal/ui"
)

const helpMarkdown = `
# Nasiya

## Umumiy
| Tugma | Amal |
|---|---|
| ` + "`tab`" + ` | Vazifalar / Nasiya bo'limi |
| ` + "`a`" + ` | Qo'shish |
| ` + "`e`" + ` | Tahrirlash |
| ` + "`space`" + ` | Bajarilgan / to'langan deb belgilash |
| ` + "`d`" + ` | O'chirish (tasdiqlash bilan) |
| ` + "`C`" + ` | Bajarilgan vazifalarni yoki to'langan nasiyalarni tozalash |
| ` + "`?`" + ` | Yordam |
| ` + "`q`" + ` | Chiqish |

## Vazifalar
` + "`1`" + ` hammasi, ` + "`2`" + ` bajarilmagan, ` + "`3`" + ` bajarilgan.

## Nasiya
` + "`s`" + ` sana bo'yicha, ` + "`S`" + ` summa bo'yicha saralash.
Qaytarish sanasi standart holda bir haftadan keyin, bugundan oldin bo'lishi mumkin emas.

## Tasdiqlash
` + "`y`" + `/` + "`enter`" + ` ha, ` + "`n`" + `/` + "`esc`" + ` yo'q.
`

// renderHelp renders the key reference at width. A fixed glamour style keeps
// it from querying the terminal background.
func renderHelp(width int) string {
	style := "dark"
	if ui.Current().Name == "mono" {
		style = "notty"
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
