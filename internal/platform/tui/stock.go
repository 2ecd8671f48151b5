package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/valleyseer/internal/calendar"
	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
	"github.com/vovakirdan/valleyseer/internal/stock"
)

// Stock view layout constants
const (
	chromeLines   = 9  // title, notices gap, status, help and margins
	minTableLines = 5  // never shrink the table below this
	labelWidth    = 26 // "Wednesday Summer 28, Year 1"
)

// errPagingFiltered is shown when paging is attempted with an active filter.
var errPagingFiltered = errors.New("clear the filter to page through windows")

// inputMode tells which text input, if any, has focus.
type inputMode int

const (
	inputNone inputMode = iota
	inputFilter
	inputJump
)

// StockModel is the Bubble Tea model for one vendor's stock.
type StockModel struct {
	vendor registry.Vendor
	cat    *catalog.Catalog
	cfg    config.Configuration

	start  int32
	filter stock.Filter
	groups []stock.Group
	err    error

	table     table.Model
	input     textinput.Model
	mode      inputMode
	help      help.Model
	keys      StockKeyMap
	inputKeys InputKeyMap

	status    string
	statusSeq int

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStockModel creates a stock view starting at the window implied by cfg.
func NewStockModel(v registry.Vendor, cat *catalog.Catalog, cfg config.Configuration, width, height int) StockModel {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Prompt = "> "

	h := help.New()
	h.Width = width

	m := StockModel{
		vendor:    v,
		cat:       cat,
		cfg:       cfg,
		start:     registry.DefaultStart(v, cfg),
		input:     ti,
		help:      h,
		keys:      DefaultStockKeyMap(),
		inputKeys: DefaultInputKeyMap(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.refresh()
	return m
}

// createTable creates a table sized for the current terminal.
func (m *StockModel) createTable() table.Model {
	kind := m.vendor.Kind()
	headers := Headers(kind)

	// Fixed widths for everything but the item name, which takes the rest.
	var columns []table.Column
	if kind == registry.KindCounter {
		columns = []table.Column{
			{Title: headers[0], Width: 8},
			{Title: headers[1], Width: 15},
			{Title: headers[2], Width: 0},
			{Title: headers[3], Width: 5},
		}
	} else {
		columns = []table.Column{
			{Title: headers[0], Width: labelWidth},
			{Title: headers[1], Width: 0},
			{Title: headers[2], Width: 8},
			{Title: headers[3], Width: 5},
		}
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // cell padding
	}
	name := m.width - 4 - used
	if name < 16 {
		name = 16
	}
	for i := range columns {
		if columns[i].Width == 0 {
			columns[i].Width = name
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *StockModel) tableHeight() int {
	h := m.height - chromeLines - len(m.vendor.Notices(m.cfg))
	if h < minTableLines {
		h = minTableLines
	}
	return h
}

// refresh recomputes the current window and reloads the table.
func (m *StockModel) refresh() {
	m.groups, m.err = m.vendor.Stock(m.cat, stock.Query{
		Config: m.cfg,
		Start:  m.start,
		Filter: m.filter,
	})

	rows := Rows(m.groups, m.vendor.Kind())
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}
	m.table.SetRows(tableRows)
	m.table.GotoTop()
}

// setStatus shows a transient message and schedules its expiry.
func (m *StockModel) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	return clearStatusCmd(m.statusSeq, statusTimeout)
}

// Init initializes the stock model.
func (m StockModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stock view.
func (m StockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.refresh()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey processes keys while the table has focus.
func (m StockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.page(1)

	case key.Matches(msg, m.keys.Prev):
		return m.page(-1)

	case key.Matches(msg, m.keys.Filter):
		m.mode = inputFilter
		m.input.Placeholder = "item name, or glob:*seed*"
		m.input.SetValue(m.filter.String())
		m.input.CursorEnd()
		cmd = m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Jump):
		m.mode = inputJump
		if m.vendor.Kind() == registry.KindCounter {
			m.input.Placeholder = "geodes cracked"
		} else {
			m.input.Placeholder = "date index or: year season day"
		}
		m.input.SetValue("")
		cmd = m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		if !m.filter.Empty() {
			m.filter = stock.Filter{}
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// page moves one unfiltered window forward or backward.
func (m StockModel) page(dir int32) (tea.Model, tea.Cmd) {
	if !m.filter.Empty() {
		cmd := m.setStatus(errPagingFiltered.Error())
		return m, cmd
	}
	kind := m.vendor.Kind()
	next := int64(m.start) + int64(dir)*int64(m.vendor.Step())
	if lo := int64(registry.MinStart(kind)); next < lo {
		next = lo
	}
	if next > math.MaxInt32 || registry.CheckStart(kind, int32(next)) != nil {
		return m, nil
	}
	if next == int64(m.start) {
		return m, nil
	}
	m.start = int32(next)
	m.refresh()
	return m, nil
}

// updateInput routes keys to the focused text input.
func (m StockModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Cancel):
		m.mode = inputNone
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.inputKeys.Submit):
		value := m.input.Value()
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()
		if err := m.apply(mode, value); err != nil {
			cmd := m.setStatus(err.Error())
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply commits a submitted input value.
func (m *StockModel) apply(mode inputMode, value string) error {
	switch mode {
	case inputFilter:
		f, err := stock.NewFilter(value)
		if err != nil {
			return err
		}
		m.filter = f
	case inputJump:
		start, err := registry.ParseStart(m.vendor.Kind(), value)
		if err != nil {
			return err
		}
		m.start = start
	default:
		return nil
	}
	m.refresh()
	return nil
}

// View renders the stock view.
func (m StockModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(" " + m.vendor.Title() + " "))
	b.WriteString(" ")
	b.WriteString(subtleStyle.Render(m.position()))
	b.WriteString("\n")
	b.WriteString(RenderNotices(m.vendor.Notices(m.cfg)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.groups) == 0:
		b.WriteString(subtleStyle.Render("No matching stock in this window."))
		b.WriteString("\n")
	default:
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	if m.mode != inputNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.mode != inputNone {
		b.WriteString(helpStyle.Render(m.help.View(m.inputKeys)))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

// position describes the current window for the title line.
func (m StockModel) position() string {
	var from string
	if m.vendor.Kind() == registry.KindCounter {
		from = fmt.Sprintf("from %d cracked", m.start)
	} else {
		from = "from " + calendar.Format(m.start)
	}
	if !m.filter.Empty() {
		from += fmt.Sprintf(" | filter %q", m.filter.String())
	}
	return from
}

// Start returns the first index of the displayed window.
func (m StockModel) Start() int32 {
	return m.start
}

// Groups returns the displayed groups.
func (m StockModel) Groups() []stock.Group {
	return m.groups
}

// Err returns the error of the last computation, if any.
func (m StockModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit.
func (m StockModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user requested to return to the menu.
func (m StockModel) IsGoingBack() bool {
	return m.goingBack
}
