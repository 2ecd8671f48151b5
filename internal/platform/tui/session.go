package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/valleyseer/internal/catalog"
	"github.com/vovakirdan/valleyseer/internal/config"
	"github.com/vovakirdan/valleyseer/internal/registry"
)

// SessionModel manages the full browsing flow: menu -> stock -> menu.
// This is the top-level model for both local and SSH sessions.
type SessionModel struct {
	cat      *catalog.Catalog
	config   config.Configuration
	width    int
	height   int
	menu     MenuModel
	stock    *StockModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cat *catalog.Catalog, cfg config.Configuration, width, height int) SessionModel {
	return SessionModel{
		cat:    cat,
		config: cfg,
		width:  width,
		height: height,
		menu:   NewMenuModel(cfg, width, height),
	}
}

// NewVendorSessionModel creates a session that opens directly on a vendor.
// Going back from the stock view still lands on the menu.
func NewVendorSessionModel(v registry.Vendor, cat *catalog.Catalog, cfg config.Configuration, width, height int) SessionModel {
	m := NewSessionModel(cat, cfg, width, height)
	sm := NewStockModel(v, cat, cfg, width, height)
	m.stock = &sm
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.stock != nil {
		return m.updateStock(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		v, err := registry.Get(selected.ID)
		if err != nil {
			// Shouldn't happen since menu only shows registered vendors
			m.menu = NewMenuModel(m.config, m.width, m.height)
			return m, nil
		}
		sm := NewStockModel(v, m.cat, m.config, m.width, m.height)
		m.stock = &sm
		return m, m.stock.Init()
	}

	return m, cmd
}

// updateStock handles updates when a stock view is open.
func (m SessionModel) updateStock(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stock.Update(msg)
	if sm, ok := newModel.(StockModel); ok {
		m.stock = &sm
	}

	if m.stock.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stock.IsGoingBack() {
		m.stock = nil
		m.menu = NewMenuModel(m.config, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.stock != nil {
		return m.stock.View()
	}
	return m.menu.View()
}

// InStock reports whether a stock view is open.
func (m SessionModel) InStock() bool {
	return m.stock != nil
}

// Run starts a local browsing session in the alternate screen.
func Run(model SessionModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
