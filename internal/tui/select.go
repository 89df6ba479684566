package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

type selectKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

var selectKeys = selectKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h", "up", "k"),
		key.WithHelp("←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "down", "j"),
		key.WithHelp("→", "move right"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle discard"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Abort: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "keep everything"),
	),
}

// selectModel is the Bubble Tea model for picking discards from a hand
type selectModel struct {
	cards       []deck.Card
	maxDiscards int

	cursor   int
	selected map[int]bool
	done     bool
	aborted  bool
}

func newSelectModel(cards []deck.Card, maxDiscards int) selectModel {
	return selectModel{
		cards:       cards,
		maxDiscards: maxDiscards,
		selected:    make(map[int]bool),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) selectedCount() int {
	count := 0
	for _, on := range m.selected {
		if on {
			count++
		}
	}
	return count
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, selectKeys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, selectKeys.Right):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, selectKeys.Toggle):
			if m.selected[m.cursor] {
				m.selected[m.cursor] = false
			} else if m.selectedCount() < m.maxDiscards {
				m.selected[m.cursor] = true
			}
		case key.Matches(msg, selectKeys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, selectKeys.Abort):
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Choose cards to discard "))
	b.WriteString("\n\n")

	for i, card := range m.cards {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}

		label := RenderCard(card)
		if m.selected[i] {
			label = SelectedStyle.Render("[" + card.String() + "]")
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, label, HelpStyle.Render(card.Name()))
	}

	help := []string{
		fmt.Sprintf("selected %d/%d", m.selectedCount(), m.maxDiscards),
	}
	for _, binding := range []key.Binding{selectKeys.Toggle, selectKeys.Confirm, selectKeys.Abort} {
		help = append(help, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", HelpStyle.Render(strings.Join(help, " / ")))
	return b.String()
}

// SelectDiscards runs an interactive picker over the hand and returns the
// cards the user chose to discard. Aborting the picker discards nothing.
func SelectDiscards(hand []deck.Card, maxDiscards int) ([]deck.Card, error) {
	program := tea.NewProgram(newSelectModel(hand, maxDiscards))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("discard picker: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok || m.aborted {
		return nil, nil
	}

	var discards []deck.Card
	for i, card := range hand {
		if m.selected[i] {
			discards = append(discards, card)
		}
	}
	return discards, nil
}
