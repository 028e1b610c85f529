package app

import (
	"github.com/Hikari118/mercari-build-training/pkg/app/components"
	"github.com/Hikari118/mercari-build-training/pkg/app/screens"
	"github.com/Hikari118/mercari-build-training/pkg/config"
	"github.com/Hikari118/mercari-build-training/pkg/logger"
	"github.com/Hikari118/mercari-build-training/pkg/sources"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type App struct {
	opts *config.Options
	log  *logger.Logger
}

func NewApp(opts *config.Options, log *logger.Logger) *App {
	if log == nil {
		log = &logger.Logger{}
	}
	return &App{opts: opts, log: log}
}

func (a *App) Run() error {
	source := sources.NewMercari(a.opts.APIBaseURL(), a.opts.Timeout)
	itemList := components.NewItemList(source, a.opts.PlaceholderImage(), components.WithLogger(a.log))
	model := screens.NewMarketScreen(itemList)

	a.log.Info("starting client", zap.String("api", a.opts.APIBaseURL()))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
