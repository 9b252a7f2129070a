// Package ui provides the Bubble Tea terminal interface for the storefront.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// Actions defines the operations the UI triggers on the synchronization
// pipeline. Implemented by *app.Service.
type Actions interface {
	Search(text string)
	CancelSearch()
	SyncCart(ctx context.Context, sess session.Session)
	AddOrUpdate(ctx context.Context, sess session.Session, productID string, qty int, preventDuplicate bool)
}

// Options configure the UI.
type Options struct {
	Context context.Context
	Actions Actions
	Store   *state.Store
	Session session.Session
	Tick    time.Duration
}

const defaultTick = 250 * time.Millisecond

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx     context.Context
	actions Actions
	store   *state.Store
	sess    session.Session
	tick    time.Duration

	theme  Theme
	width  int
	height int
	ready  bool

	snapshot    state.Snapshot
	lastUpdated time.Time

	selectedRow int
	searchInput textinput.Model
	searching   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	ti := textinput.New()
	ti.Placeholder = "Search for items/categories"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return Model{
		ctx:         ctx,
		actions:     opts.Actions,
		store:       opts.Store,
		sess:        opts.Session,
		tick:        tick,
		theme:       DefaultTheme(),
		searchInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.tick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelection()
		return m, nil

	case actionDoneMsg:
		// Pull the result in right away instead of waiting for the tick.
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.selectedRow < len(m.snapshot.Products)-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if n := len(m.snapshot.Products); n > 0 {
			m.selectedRow = n - 1
		}
		return m, nil

	case "a", "enter":
		if p, ok := m.selectedProduct(); ok {
			return m, m.addToCartCmd(p.ID, 1, true)
		}
		return m, nil

	case "+":
		if p, ok := m.selectedProduct(); ok {
			qty := cart.Quantity(m.snapshot.RawEntries, p.ID)
			if qty > 0 {
				return m, m.addToCartCmd(p.ID, qty+1, false)
			}
		}
		return m, nil

	case "-":
		if p, ok := m.selectedProduct(); ok {
			// qty 0 removes the entry server-side.
			qty := cart.Quantity(m.snapshot.RawEntries, p.ID)
			if qty > 0 {
				return m, m.addToCartCmd(p.ID, qty-1, false)
			}
		}
		return m, nil

	case "r":
		return m, m.syncCartCmd()

	case "x", "esc":
		if m.store != nil {
			m.store.ClearNotice()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box is focused.
// Every edit feeds the debounced search pipeline; only the last keystroke of
// a burst reaches the network.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		if m.actions != nil {
			// Drop any keystroke still waiting out the quiet window,
			// then restore the catalog view.
			m.actions.CancelSearch()
			m.actions.Search("")
		}
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.actions != nil && m.searchInput.Value() != before {
		m.actions.Search(m.searchInput.Value())
	}
	return m, cmd
}

func (m Model) selectedProduct() (storefront.Product, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Products) {
		return storefront.Product{}, false
	}
	return m.snapshot.Products[m.selectedRow], true
}

func (m *Model) clampSelection() {
	if n := len(m.snapshot.Products); m.selectedRow >= n {
		if n == 0 {
			m.selectedRow = 0
		} else {
			m.selectedRow = n - 1
		}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) addToCartCmd(productID string, qty int, preventDuplicate bool) tea.Cmd {
	return func() tea.Msg {
		if m.actions != nil {
			m.actions.AddOrUpdate(m.ctx, m.sess, productID, qty, preventDuplicate)
		}
		return actionDoneMsg{}
	}
}

func (m Model) syncCartCmd() tea.Cmd {
	return func() tea.Msg {
		if m.actions != nil {
			m.actions.SyncCart(m.ctx, m.sess)
		}
		return actionDoneMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Shutdown via signal, not a UI failure.
		return nil
	}
	return err
}
