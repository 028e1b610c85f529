package screens

import (
	"fmt"

	"github.com/Hikari118/mercari-build-training/pkg/app/components"
	"github.com/Hikari118/mercari-build-training/pkg/app/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// MarketScreen owns the reload flag of the item list. It starts out loading
// and goes idle again once the list reports a completed load.
type MarketScreen struct {
	itemList *components.ItemList
	reload   bool
	width    int
	height   int
}

func NewMarketScreen(itemList *components.ItemList) *MarketScreen {
	return &MarketScreen{
		itemList: itemList,
		reload:   true,
	}
}

func (s *MarketScreen) Init() tea.Cmd {
	return s.itemList.Sync(s.reload, s.onLoadCompleted)
}

func (s *MarketScreen) onLoadCompleted() {
	s.reload = false
}

func (s *MarketScreen) Reloading() bool {
	return s.reload
}

func (s *MarketScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.itemList.Width = msg.Width - 4
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "r":
			s.reload = true
			return s, s.itemList.Sync(s.reload, s.onLoadCompleted)
		}
		return s, nil
	}

	return s, s.itemList.Update(msg)
}

func (s *MarketScreen) View() string {
	header := styles.TitleStyle.Render("Simple Mercari")

	status := ""
	if s.reload {
		status = styles.MutedStyle.Render("Loading...") + "\n"
	}

	help := styles.HelpStyle.Render("r: reload • q: quit")

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, status, s.itemList.View(), help)
}
