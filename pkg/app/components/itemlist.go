package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hikari118/mercari-build-training/pkg/app/styles"
	"github.com/Hikari118/mercari-build-training/pkg/data"
	"github.com/Hikari118/mercari-build-training/pkg/logger"
	"github.com/Hikari118/mercari-build-training/pkg/sources"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// maxImageLoads bounds the image requests in flight for one list.
const maxImageLoads = 6

type LoadState int

const (
	Idle LoadState = iota
	Fetching
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

type Option func(*ItemList)

func WithLogger(l Logger) Option {
	return func(il *ItemList) {
		if l != nil {
			il.log = l
		}
	}
}

// WithImageProbe turns image loading on or off. Without it rows never fall
// back to the placeholder.
func WithImageProbe(enabled bool) Option {
	return func(il *ItemList) {
		il.probe = enabled
	}
}

// ItemList fetches the marketplace items when asked to reload and renders them
// as cards. Only the most recent fetch may change the list; results of
// superseded fetches are dropped.
type ItemList struct {
	Width int

	source      sources.Source
	placeholder string
	log         Logger
	probe       bool

	items           []data.Item
	state           LoadState
	onLoadCompleted func()

	token       uint64
	cancelFetch context.CancelFunc

	// generation changes every time items is replaced; image results carry it
	generation   uint64
	cancelImages context.CancelFunc
	brokenImages map[int]bool
}

func NewItemList(source sources.Source, placeholder string, opts ...Option) *ItemList {
	l := &ItemList{
		Width:        80,
		source:       source,
		placeholder:  placeholder,
		log:          logger.Logger{},
		probe:        true,
		items:        []data.Item{},
		brokenImages: map[int]bool{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sync applies the parent's reload flag. With reload set it starts exactly one
// fetch, cancelling any fetch still in flight. A non-nil onLoadCompleted
// replaces the callback invoked after the next successful load.
func (l *ItemList) Sync(reload bool, onLoadCompleted func()) tea.Cmd {
	if onLoadCompleted != nil {
		l.onLoadCompleted = onLoadCompleted
	}
	if !reload {
		return nil
	}
	return l.fetch()
}

func (l *ItemList) fetch() tea.Cmd {
	if l.cancelFetch != nil {
		l.cancelFetch()
	}
	l.token++
	token := l.token
	ctx, cancel := context.WithCancel(context.Background())
	l.cancelFetch = cancel
	l.state = Fetching

	source := l.source
	return func() tea.Msg {
		items, err := source.FetchItems(ctx)
		if err != nil {
			return itemsFailedMsg{token: token, err: err}
		}
		if items == nil {
			items = &data.Items{}
		}
		return itemsLoadedMsg{token: token, items: items.Items}
	}
}

func (l *ItemList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.token != l.token {
			l.log.Debug("GET stale", zap.Uint64("token", msg.token), zap.Uint64("latest", l.token))
			return nil
		}
		l.endFetch()
		l.state = Loaded
		l.log.Debug("GET success", zap.Int("items", len(msg.items)))
		cmd := l.setItems(msg.items)
		if l.onLoadCompleted != nil {
			l.onLoadCompleted()
		}
		return cmd

	case itemsFailedMsg:
		if msg.token != l.token {
			l.log.Debug("GET stale", zap.Uint64("token", msg.token), zap.Error(msg.err))
			return nil
		}
		l.endFetch()
		l.state = Failed
		l.log.Error("GET error", zap.Error(msg.err))

	case imageFailedMsg:
		if msg.generation != l.generation {
			return nil
		}
		l.log.Debug("image error", zap.Int("row", msg.index), zap.Error(msg.err))
		l.MarkImageFailed(msg.index)
	}

	return nil
}

func (l *ItemList) endFetch() {
	if l.cancelFetch != nil {
		l.cancelFetch()
		l.cancelFetch = nil
	}
}

func (l *ItemList) setItems(items []data.Item) tea.Cmd {
	if items == nil {
		items = []data.Item{}
	}
	l.items = items
	l.generation++
	l.brokenImages = map[int]bool{}
	if l.cancelImages != nil {
		l.cancelImages()
		l.cancelImages = nil
	}
	if !l.probe || len(items) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancelImages = cancel
	generation := l.generation
	source := l.source

	sem := semaphore.NewWeighted(maxImageLoads)

	cmds := make([]tea.Cmd, len(items))
	for i, item := range items {
		i := i
		url := source.ImageURL(item.ImageName)
		cmds[i] = func() tea.Msg {
			if err := sem.Acquire(ctx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)
			if err := source.ProbeImage(ctx, url); err != nil {
				return imageFailedMsg{generation: generation, index: i, err: err}
			}
			return nil
		}
	}
	return tea.Batch(cmds...)
}

func (l *ItemList) Items() []data.Item {
	return l.items
}

func (l *ItemList) State() LoadState {
	return l.state
}

// MarkImageFailed switches row i to the placeholder image.
func (l *ItemList) MarkImageFailed(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.brokenImages[i] = true
}

func (l *ItemList) ImageFailed(i int) bool {
	return l.brokenImages[i]
}

// ImageSource is the image shown for row i.
func (l *ItemList) ImageSource(i int) string {
	if i < 0 || i >= len(l.items) {
		return ""
	}
	if l.brokenImages[i] {
		return l.placeholder
	}
	return l.source.ImageURL(l.items[i].ImageName)
}

func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return styles.MutedStyle.Render("No items")
	}

	var b strings.Builder
	for i, item := range l.items {
		imageStyle := styles.ImageStyle
		if l.brokenImages[i] {
			imageStyle = styles.PlaceholderStyle
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			imageStyle.Render(fmt.Sprintf("Image: %s", l.ImageSource(i))),
			styles.TextStyle.Render(fmt.Sprintf("Name: %s", item.Name)),
			styles.TextStyle.Render(fmt.Sprintf("Category: %s", item.Category)),
		)

		b.WriteString(styles.CardStyle.Width(l.Width - 4).Render(cardContent))
		b.WriteString("\n")
	}
	return b.String()
}

// Messages
type itemsLoadedMsg struct {
	token uint64
	items []data.Item
}

type itemsFailedMsg struct {
	token uint64
	err   error
}

type imageFailedMsg struct {
	generation uint64
	index      int
	err        error
}
