// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui is the interactive animal browser: a query line, the list of
// names from the current result set, and the details of the selected one.
package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/bestiary/internal/resolve"
	"github.com/pdiddy/bestiary/internal/session"
)

// Searcher runs one search interaction. *session.Session implements it.
type Searcher interface {
	Search(ctx context.Context, query string) session.Interaction
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// searchMsg carries a finished interaction back to the model, tagged with
// the request number it was issued under.
type searchMsg struct {
	tag int
	it  session.Interaction
}

type noticeMsg session.Notice

// nameItem adapts one ResultSet position to list.Item.
type nameItem struct {
	name string
	pos  int
}

func (i nameItem) Title() string       { return i.name }
func (i nameItem) Description() string { return "" }
func (i nameItem) FilterValue() string { return i.name }

// Model is the bubbletea model of the browser.
type Model struct {
	ctx      context.Context
	searcher Searcher
	notices  <-chan session.Notice
	stat     StatFunc

	input  textinput.Model
	list   list.Model
	detail viewport.Model
	focus  focus

	// set is the result set currently listed. Selection projects from it
	// and nothing else.
	set        resolve.ResultSet
	detailText string

	issued    int
	searching bool
	notice    *session.Notice

	// seenSeq is the newest interaction sequence a result or notice has
	// arrived for. Notices for it or anything older are out of date.
	seenSeq uint64

	width, height int
	styles        Styles
}

// Option configures a Model.
type Option func(*Model)

// WithNotices feeds asynchronous notices (e.g. "Searching Online") into the
// status line.
func WithNotices(ch <-chan session.Notice) Option {
	return func(m *Model) { m.notices = ch }
}

// WithStartupNotice shows n until the first search finishes.
func WithStartupNotice(n session.Notice) Option {
	return func(m *Model) { m.notice = &n }
}

// WithStat overrides how image paths are checked.
func WithStat(stat StatFunc) Option {
	return func(m *Model) { m.stat = stat }
}

// New builds the browser model. The initial listing is the empty query,
// i.e. the whole local dataset.
func New(ctx context.Context, searcher Searcher, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Search animal..."
	ti.Prompt = "Search Animal: "
	ti.CharLimit = 128
	ti.Focus()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(nil, d, 0, 0)
	l.Title = "Search Results"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := Model{
		ctx:      ctx,
		searcher: searcher,
		stat:     statFile,
		input:    ti,
		list:     l,
		detail:   viewport.New(0, 0),
		styles:   DefaultStyles(),
	}
	m.list.Styles.Title = m.styles.Title
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init lists the local dataset and starts listening for notices.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.runSearch(0, "")}
	if m.notices != nil {
		cmds = append(cmds, waitForNotice(m.notices))
	}
	return tea.Batch(cmds...)
}

func (m Model) runSearch(tag int, query string) tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		return searchMsg{tag: tag, it: searcher.Search(ctx, query)}
	}
}

func waitForNotice(ch <-chan session.Notice) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

// Update handles keys, window sizing, finished searches and notices.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case searchMsg:
		return m.applySearch(msg), nil

	case noticeMsg:
		m.applyNotice(session.Notice(msg))
		if m.notices == nil {
			return m, nil
		}
		return m, waitForNotice(m.notices)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "enter":
			if m.focus == focusInput {
				m.issued++
				m.searching = true
				m.notice = nil
				return m, m.runSearch(m.issued, m.input.Value())
			}
		case "q":
			if m.focus == focusList {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.showSelected()
	}
	var vpCmd tea.Cmd
	m.detail, vpCmd = m.detail.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

// applySearch swaps in the result set of a finished interaction. Responses
// to anything but the latest request, or that the session marked stale,
// are dropped so an old answer never replaces a newer one.
func (m Model) applySearch(msg searchMsg) Model {
	if msg.it.Seq > m.seenSeq {
		m.seenSeq = msg.it.Seq
	}
	if msg.tag != m.issued || msg.it.Stale() {
		return m
	}
	m.searching = false

	if n, ok := msg.it.Notice(); ok {
		m.notice = &n
		return m
	}
	if msg.it.State != session.Resolved {
		return m
	}
	if msg.tag > 0 {
		m.notice = nil
	}

	m.set = msg.it.Set
	names := m.set.Names()
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = nameItem{name: name, pos: i}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Search Results (%s, %d)", m.set.Provenance(), m.set.Len())
	if len(items) > 0 {
		m.list.Select(0)
	}
	m.showSelected()
	return m
}

// applyNotice shows n unless it belongs to an interaction that already
// finished or was overtaken. Notices with no sequence are always shown.
func (m *Model) applyNotice(n session.Notice) {
	if n.Seq != 0 {
		if n.Seq <= m.seenSeq {
			return
		}
		m.seenSeq = n.Seq
	}
	m.notice = &n
}

// showSelected projects the selected position of the listed set.
func (m *Model) showSelected() {
	item, ok := m.list.SelectedItem().(nameItem)
	if !ok {
		m.detailText = ""
		m.detail.SetContent("")
		return
	}
	dm, ok := m.set.Project(item.pos)
	if !ok {
		return
	}
	m.detailText = RenderDetail(dm, m.stat)
	m.detail.SetContent(m.detailText)
	m.detail.GotoTop()
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) layout() {
	const chrome = 4
	listW := m.width / 3
	if listW < 20 {
		listW = 20
	}
	paneH := m.height - 6
	if paneH < 3 {
		paneH = 3
	}
	m.input.Width = m.width - len(m.input.Prompt) - 2
	m.list.SetSize(listW-chrome, paneH)
	m.detail.Width = m.width - listW - chrome
	m.detail.Height = paneH
}

// View renders the query line, the two panes and the status line.
func (m Model) View() string {
	listStyle, detailStyle := m.styles.Pane, m.styles.Pane
	if m.focus == focusList {
		listStyle = m.styles.Focused
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		detailStyle.Render(m.detail.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Animal Encyclopedia"),
		m.input.View(),
		panes,
		m.statusLine(),
		m.styles.Help.Render("enter: search • tab: switch pane • ↑/↓: select • esc: quit"),
	)
}

func (m Model) statusLine() string {
	switch {
	case m.notice != nil && m.notice.Level == session.LevelError:
		return m.styles.Error.Render(m.notice.String())
	case m.notice != nil:
		return m.styles.Info.Render(m.notice.String())
	case m.searching:
		return m.styles.Info.Render("Searching...")
	}
	return ""
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(ctx context.Context, searcher Searcher, opts ...Option) error {
	p := tea.NewProgram(New(ctx, searcher, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
