package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const rangeDateLayout = "2006-01-02"

// rangeForm edits a custom date range for the Custom period.
type rangeForm struct {
	start  textinput.Model
	end    textinput.Model
	focus  int
	active bool
	errMsg string

	startDate time.Time
	endDate   time.Time
}

func newRangeForm() rangeForm {
	start := textinput.New()
	start.Placeholder = rangeDateLayout
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = rangeDateLayout
	end.CharLimit = 10
	end.Width = 12

	return rangeForm{start: start, end: end}
}

func (f *rangeForm) open(start, end time.Time) {
	f.active = true
	f.errMsg = ""
	f.focus = 0
	if !start.IsZero() {
		f.start.SetValue(start.Format(rangeDateLayout))
	}
	if !end.IsZero() {
		f.end.SetValue(end.Format(rangeDateLayout))
	}
	f.start.Focus()
	f.end.Blur()
}

// update handles one key message; it reports true when a valid range
// was applied.
func (f *rangeForm) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		f.active = false
		return false, nil
	case "tab", "shift+tab", "up", "down":
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.start.Focus()
			f.end.Blur()
		} else {
			f.end.Focus()
			f.start.Blur()
		}
		return false, nil
	case "enter":
		start, err := time.ParseInLocation(rangeDateLayout, f.start.Value(), time.Local)
		if err != nil {
			f.errMsg = "start date must be YYYY-MM-DD"
			return false, nil
		}
		end, err := time.ParseInLocation(rangeDateLayout, f.end.Value(), time.Local)
		if err != nil {
			f.errMsg = "end date must be YYYY-MM-DD"
			return false, nil
		}
		if start.After(end) {
			start, end = end, start
		}
		f.startDate, f.endDate = start, end
		f.active = false
		f.errMsg = ""
		return true, nil
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.start, cmd = f.start.Update(msg)
	} else {
		f.end, cmd = f.end.Update(msg)
	}
	return false, cmd
}

func (f *rangeForm) view() string {
	label := lipgloss.NewStyle().Foreground(colorLabel)
	dim := lipgloss.NewStyle().Foreground(colorDim)

	row := label.Render("Custom range  ") +
		f.start.View() + dim.Render("  to  ") + f.end.View()

	rows := []string{row}
	if f.errMsg != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorCrit).Render(f.errMsg))
	}
	rows = append(rows, dim.Render("enter:apply  tab:switch  esc:cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
