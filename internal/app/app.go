// Package app wires the storage, gateway, and screens into the root
// Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/llm"
	"github.com/asadk/hikmah/internal/profile"
	"github.com/asadk/hikmah/internal/router"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/screens/auth"
	"github.com/asadk/hikmah/internal/screens/dashboard"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/storage"
	"github.com/asadk/hikmah/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It owns the router and the
// signed-in session, and swaps between the auth and dashboard stacks.
type AppModel struct {
	store   *profile.Store
	gateway *gateway.Service

	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel builds the model. When restored is non-nil the app opens
// straight onto the dashboard; otherwise it starts at the login screen.
func newAppModel(store *profile.Store, gw *gateway.Service, restored *profile.Profile) *AppModel {
	m := &AppModel{store: store, gateway: gw}

	var first screen.Screen
	if restored != nil {
		first = m.openDashboard(restored)
	} else {
		first = m.authScreen()
	}
	m.router = router.New(first)
	return m
}

// openDashboard starts a session for the profile and returns its screen.
func (m *AppModel) openDashboard(p *profile.Profile) screen.Screen {
	m.sess = session.New(m.store, m.gateway, p)
	return dashboard.New(m.sess, m.loggedOut)
}

// authScreen returns the login screen wired to open the dashboard.
func (m *AppModel) authScreen() screen.Screen {
	return auth.New(m.store, m.openDashboard)
}

// loggedOut drops the session and returns the login screen.
func (m *AppModel) loggedOut() screen.Screen {
	m.sess = nil
	return m.authScreen()
}

func (m *AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	username := ""
	tasbih := 0
	if m.sess != nil {
		username = m.sess.Profile().Username
		tasbih = m.sess.Profile().TasbihCount
	}
	header := layout.RenderHeader(title, username, tasbih, m.width)

	hints := []layout.KeyHint{}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, provider.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// resolveConfig reads HIKMAH_* variables first, then probes the standard
// provider key variables. Without any key the app runs offline: gateway
// features show their fallback text while everything local still works.
func resolveConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}

	fmt.Fprintln(os.Stderr, "hikmah: no API key found, AI features disabled (set GEMINI_API_KEY or see README)")
	offline := llm.DefaultConfig()
	offline.Provider = "mock"
	return offline
}

// Options configures Run. Zero values fall back to the default XDG paths.
type Options struct {
	DBPath   string
	StateDir string
}

// Run opens storage, builds the gateway, restores any previous session,
// and starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := context.Background()
	llm.LoadEnv()

	dbPath := opts.DBPath
	var err error
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	stateDir := opts.StateDir
	if stateDir == "" {
		stateDir, err = storage.DefaultStateDir()
		if err != nil {
			return err
		}
	}
	files, err := storage.NewFileStore(stateDir)
	if err != nil {
		return err
	}

	store := profile.NewStore(db, files)

	client, err := llm.NewClient(ctx, resolveConfig(), db.EventRepo())
	if err != nil {
		return fmt.Errorf("create completion client: %w", err)
	}
	gw := gateway.NewService(client)

	restored, err := store.RestoreSession(ctx)
	if err != nil {
		// A corrupt session slot should not block login.
		restored = nil
	}

	p := tea.NewProgram(newAppModel(store, gw, restored))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
