package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/aquamind/internal/auth"
)

// loginForm is the authentication gate shown before the dashboard.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	name     textinput.Model
	focus    int
	signup   bool
	errMsg   string
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 64
	name.Width = 32

	return loginForm{email: email, password: password, name: name}
}

func (f *loginForm) fields() []*textinput.Model {
	if f.signup {
		return []*textinput.Model{&f.name, &f.email, &f.password}
	}
	return []*textinput.Model{&f.email, &f.password}
}

func (f *loginForm) setFocus(i int) {
	fields := f.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	f.focus = i
	for j, in := range fields {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// update handles one key message. It returns the authenticated user
// and true once login or signup succeeds.
func (f *loginForm) update(msg tea.KeyMsg, users *auth.Store) (auth.User, bool, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return auth.User{}, false, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return auth.User{}, false, nil
	case "ctrl+s":
		f.signup = !f.signup
		f.errMsg = ""
		f.setFocus(0)
		return auth.User{}, false, nil
	case "enter":
		return f.submit(users)
	}

	var cmd tea.Cmd
	in := f.fields()[f.focus]
	*in, cmd = in.Update(msg)
	return auth.User{}, false, cmd
}

func (f *loginForm) submit(users *auth.Store) (auth.User, bool, tea.Cmd) {
	email := strings.TrimSpace(f.email.Value())
	password := f.password.Value()

	var (
		u   auth.User
		err error
	)
	if f.signup {
		u, err = users.SignUp(email, password, strings.TrimSpace(f.name.Value()))
	} else {
		u, err = users.Login(email, password)
	}
	if err != nil {
		f.errMsg = err.Error()
		f.password.SetValue("")
		return auth.User{}, false, nil
	}
	return u, true, nil
}

func (f *loginForm) view(width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("AQUAMIND")

	mode := "Login"
	if f.signup {
		mode = "Sign Up"
	}
	modeText := lipgloss.NewStyle().Foreground(colorLabel).Render(mode)

	var rows []string
	rows = append(rows, title+"  "+modeText, "")
	if f.signup {
		rows = append(rows, f.name.View())
	}
	rows = append(rows, f.email.View(), f.password.View())

	if f.errMsg != "" {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(colorCrit).Render(f.errMsg))
	}

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	rows = append(rows, "", dimS.Render("enter:submit  tab:next  ctrl+s:login/signup  ctrl+c:quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(2, 0).
		Render(box)
}
