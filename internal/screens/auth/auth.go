// Package auth implements the login and registration screen. It is the only
// screen reachable without a session; every other screen is created from a
// signed-in Session.
package auth

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/profile"
	"github.com/asadk/hikmah/internal/router"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// doneMsg is sent when authentication succeeds.
type doneMsg struct {
	Profile *profile.Profile
}

// failedMsg is sent when authentication fails with a user-visible reason.
type failedMsg struct {
	Reason string
}

// AuthScreen collects credentials and signs the user in or registers them.
type AuthScreen struct {
	store   *profile.Store
	next    func(*profile.Profile) screen.Screen
	mode    mode
	focus   field
	user    components.TextInput
	pass    components.TextInput
	errText string
	busy    bool
}

var _ screen.Screen = (*AuthScreen)(nil)

// New creates the auth screen. next builds the screen shown after a
// successful sign-in.
func New(store *profile.Store, next func(*profile.Profile) screen.Screen) *AuthScreen {
	user := components.NewTextInput("username", false, 32)
	pass := components.NewTextInput("password", false, 64)
	pass.Model.EchoMode = textinput.EchoPassword
	pass.Model.Blur()

	return &AuthScreen{
		store: store,
		next:  next,
		user:  user,
		pass:  pass,
	}
}

func (a *AuthScreen) Title() string {
	if a.mode == modeRegister {
		return "Create Account"
	}
	return "Sign In"
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.user.Init()
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		a.busy = false
		nextScreen := a.next(msg.Profile)
		return a, func() tea.Msg {
			return router.ResetScreenMsg{Screen: nextScreen}
		}

	case failedMsg:
		a.busy = false
		a.errText = msg.Reason
		return a, nil

	case tea.KeyMsg:
		if a.busy {
			return a, nil
		}
		switch msg.String() {
		case "tab", "down":
			return a, a.setFocus(fieldPassword)
		case "shift+tab", "up":
			return a, a.setFocus(fieldUsername)
		case "ctrl+t":
			a.toggleMode()
			return a, nil
		case "enter":
			if a.focus == fieldUsername {
				return a, a.setFocus(fieldPassword)
			}
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	if a.focus == fieldUsername {
		a.user, cmd = a.user.Update(msg)
	} else {
		a.pass, cmd = a.pass.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) setFocus(f field) tea.Cmd {
	a.focus = f
	if f == fieldUsername {
		a.pass.Model.Blur()
		return a.user.Model.Focus()
	}
	a.user.Model.Blur()
	return a.pass.Model.Focus()
}

func (a *AuthScreen) toggleMode() {
	if a.mode == modeLogin {
		a.mode = modeRegister
	} else {
		a.mode = modeLogin
	}
	a.errText = ""
}

func (a *AuthScreen) submit() tea.Cmd {
	username := strings.TrimSpace(a.user.Value())
	password := a.pass.Value()
	register := a.mode == modeRegister
	a.busy = true
	a.errText = ""

	store := a.store
	return func() tea.Msg {
		ctx := context.Background()

		var p *profile.Profile
		var err error
		if register {
			p, err = store.Register(ctx, username, password)
		} else {
			p, err = store.Authenticate(ctx, username, password)
		}
		if err != nil {
			return failedMsg{Reason: reasonFor(err)}
		}
		return doneMsg{Profile: p}
	}
}

// reasonFor maps store errors to the short messages shown under the form.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, profile.ErrDuplicateUsername):
		return "That username is taken."
	case errors.Is(err, profile.ErrInvalidCredentials):
		return "Wrong username or password."
	case errors.Is(err, profile.ErrEmptyInput):
		return "Username and password are required."
	default:
		return "Something went wrong. Try again."
	}
}

func (a *AuthScreen) View(width, height int) string {
	title := theme.Title.Render("☪  Hikmah")
	subtitle := theme.Subtitle.Render("Your companion for Quran, Hadith, and daily worship")

	var action string
	if a.mode == modeRegister {
		action = "Create a new account"
	} else {
		action = "Sign in to continue"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(action))
	b.WriteString("\n\n")
	b.WriteString(a.fieldLabel("Username", fieldUsername))
	b.WriteString("\n")
	b.WriteString(a.user.View())
	b.WriteString("\n\n")
	b.WriteString(a.fieldLabel("Password", fieldPassword))
	b.WriteString("\n")
	b.WriteString(a.pass.View())
	b.WriteString("\n")

	if a.errText != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(a.errText))
		b.WriteString("\n")
	}
	if a.busy {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("working..."))
		b.WriteString("\n")
	}

	card := theme.Card.Width(48).Render(b.String())

	var toggleHint string
	if a.mode == modeRegister {
		toggleHint = theme.Hint.Render("Ctrl+T: sign in instead")
	} else {
		toggleHint = theme.Hint.Render("Ctrl+T: create an account")
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", card, "", toggleHint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AuthScreen) fieldLabel(label string, f field) string {
	if a.focus == f {
		return theme.Selected.Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Switch mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
