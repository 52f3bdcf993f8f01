package tui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rusenback/smslogs/internal/api"
	"github.com/rusenback/smslogs/internal/i18n"
	"github.com/rusenback/smslogs/internal/logging"
	"github.com/rusenback/smslogs/internal/model"
	"github.com/rusenback/smslogs/internal/storage"
)

const (
	defaultCopiedFor = 1500 * time.Millisecond
	defaultToastFor  = 3 * time.Second
)

// Model represents the SMS log list view
type Model struct {
	// ctx lives as long as the view; quitting cancels the in-flight fetch
	ctx    context.Context
	cancel context.CancelFunc

	client    api.SMSLogClient
	storage   *storage.Storage
	tr        *i18n.Translator
	log       logrus.FieldLogger
	clipboard Clipboard

	logs     []model.LogRecord
	filtered []model.LogRecord // always derived from logs, search and typeSelect
	loading  bool
	err      string

	search     textinput.Model
	typeSelect *TypeSelect
	spinner    spinner.Model

	cursor int
	offset int

	// copied maps a row key to the generation of its latest copy
	copied    map[string]int
	copyGen   int
	copiedFor time.Duration

	toast    *toast
	toastGen int
	toastFor time.Duration

	width    int
	height   int
	quitting bool
}

// Options holds the collaborators of the view. Zero values get defaults.
type Options struct {
	Translator *i18n.Translator
	Logger     logrus.FieldLogger
	Clipboard  Clipboard
	CopiedFor  time.Duration
	ToastFor   time.Duration
}

// Message types for Bubbletea update loop
type logsMsg struct {
	records []model.LogRecord
	err     error
}

type copyExpiredMsg struct {
	key string
	gen int
}

type toastExpiredMsg struct {
	gen int
}

type clipboardMsg struct {
	err error
}

// NewModel creates a new TUI model. store may be nil.
func NewModel(client api.SMSLogClient, store *storage.Storage, opts Options) Model {
	if opts.Translator == nil {
		opts.Translator = i18n.New("")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = NewOSC52Clipboard(os.Stderr)
	}
	if opts.CopiedFor <= 0 {
		opts.CopiedFor = defaultCopiedFor
	}
	if opts.ToastFor <= 0 {
		opts.ToastFor = defaultToastFor
	}

	ctx, cancel := context.WithCancel(context.Background())

	search := textinput.New()
	search.Placeholder = opts.Translator.T("common.search")
	search.Prompt = "🔍 "
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		ctx:        ctx,
		cancel:     cancel,
		client:     client,
		storage:    store,
		tr:         opts.Translator,
		log:        opts.Logger,
		clipboard:  opts.Clipboard,
		loading:    true,
		search:     search,
		typeSelect: NewTypeSelect(opts.Translator.T("smsLogs.type"), model.KnownTypes, opts.Translator.Label),
		spinner:    sp,
		copied:     make(map[string]int),
		copiedFor:  opts.CopiedFor,
		toastFor:   opts.ToastFor,
		width:      120,
		height:     40,
	}
}

// Init starts the spinner and the one-time fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchLogs(m.ctx, m.client))
}

// applyFilter recomputes the filtered view and resets the cursor
func (m *Model) applyFilter() {
	f := model.Filter{Search: m.search.Value(), Type: m.typeSelect.Value()}
	m.filtered = f.Apply(m.logs)
	m.cursor = 0
	m.offset = 0
}

// record queues a journal event when storage is configured
func (m *Model) record(e *storage.Event) {
	if m.storage != nil {
		m.storage.Write(e)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}
