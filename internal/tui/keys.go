package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit, Help, Switch           key.Binding
	Add, Edit, Toggle, Delete    key.Binding
	Clear                        key.Binding
	FilterAll, FilterPending     key.Binding
	FilterCompleted              key.Binding
	SortDate, SortAmount         key.Binding
	Confirm, Cancel              key.Binding
	NextField, PrevField, Submit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "chiqish")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "yordam")),
		Switch:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "bo'lim")),
		Add:             key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "qo'shish")),
		Edit:            key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "tahrirlash")),
		Toggle:          key.NewBinding(key.WithKeys(" ", "x", "p"), key.WithHelp("space", "belgilash")),
		Delete:          key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "o'chirish")),
		Clear:           key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "tozalash")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "hammasi")),
		FilterPending:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "bajarilmagan")),
		FilterCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "bajarilgan")),
		SortDate:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sana")),
		SortAmount:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "summa")),
		Confirm:         key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "ha")),
		Cancel:          key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "yo'q")),
		NextField:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "keyingi")),
		PrevField:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "oldingi")),
		Submit:          key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "saqlash")),
	}
}

// browseHelp is the footer for the active pane.
func (k keyMap) browseHelp(p pane) []key.Binding {
	common := []key.Binding{k.Switch, k.Add, k.Edit, k.Toggle, k.Delete, k.Clear}
	if p == paneDebts {
		return append(common, k.SortDate, k.SortAmount, k.Help, k.Quit)
	}
	return append(common, k.FilterAll, k.FilterPending, k.FilterCompleted, k.Help, k.Quit)
}
