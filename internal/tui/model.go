package tui

import (
	"github.com/tinytelemetry/sidenav/internal/model"
	"github.com/tinytelemetry/sidenav/internal/sidenav"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a NavigationModel.
type Options struct {
	SidebarWidth       int
	Theme              Theme
	ReverseScrollWheel bool
}

// NavigationModel hosts a side navigation widget in the terminal. Mouse
// clicks on a rendered row and enter on the cursor row select that item.
type NavigationModel struct {
	nav  *sidenav.SideNavigation
	keys KeyMap
	help help.Model

	theme              Theme
	sidebarWidth       int
	reverseScrollWheel bool

	// Keyboard cursor; independent of the active item until enter is pressed.
	cursor int

	width  int
	height int
}

// NewNavigationModel wraps nav. Zero-valued options fall back to defaults.
func NewNavigationModel(nav *sidenav.SideNavigation, opts Options) *NavigationModel {
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = model.DefaultSidebarWidth
	}
	if opts.Theme.Name == "" {
		opts.Theme, _ = ThemeByName(model.DefaultSkin)
	}

	return &NavigationModel{
		nav:                nav,
		keys:               DefaultKeyMap(),
		help:               help.New(),
		theme:              opts.Theme,
		sidebarWidth:       opts.SidebarWidth,
		reverseScrollWheel: opts.ReverseScrollWheel,
		cursor:             nav.ActiveIndex(),
	}
}

// Navigation returns the hosted widget.
func (m *NavigationModel) Navigation() *sidenav.SideNavigation {
	return m.nav
}

func (m *NavigationModel) Init() tea.Cmd {
	return nil
}

// NavigationPage adapts NavigationModel to the App page router.
type NavigationPage struct {
	model *NavigationModel
}

// NewNavigationPage returns the page that shows m.
func NewNavigationPage(m *NavigationModel) *NavigationPage {
	return &NavigationPage{model: m}
}

func (p *NavigationPage) ID() string { return "navigation" }

func (p *NavigationPage) Init() tea.Cmd { return p.model.Init() }

func (p *NavigationPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.model.Update(msg)
	return cmd, nil
}

func (p *NavigationPage) View(width, height int) string {
	p.model.width = width
	p.model.height = height
	return p.model.View()
}
