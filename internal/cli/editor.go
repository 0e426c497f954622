package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lenaweber/paceflow/internal/cli/formatter"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/pacing"
)

// editorRow is one adjustable item line in the pace editor.
type editorRow struct {
	itemID     string
	moduleName string
	title      string
	itemType   domain.ModuleItemType
	original   int
	duration   int
}

type editorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Save     key.Binding
	Cancel   key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Increase: key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+", "more days")),
		Decrease: key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", "fewer days")),
		Save:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// editorModel is the interactive duration editor for one pace. Every keypress
// that changes a duration re-projects the end date against the budget, so the
// fit indicator updates live.
type editorModel struct {
	pace      *domain.CoursePace
	blackouts []domain.BlackoutDate
	rows      []editorRow
	cursor    int
	width     int
	keys      editorKeyMap
	saved     bool
}

func newEditorModel(p *domain.CoursePace, blackouts []domain.BlackoutDate) editorModel {
	var rows []editorRow
	for _, m := range p.Modules {
		for _, item := range m.Items {
			rows = append(rows, editorRow{
				itemID:     item.ID,
				moduleName: m.Name,
				title:      item.Title,
				itemType:   item.ModuleItemType,
				original:   item.Duration,
				duration:   item.Duration,
			})
		}
	}
	return editorModel{
		pace:      p,
		blackouts: blackouts,
		rows:      rows,
		keys:      defaultEditorKeyMap(),
	}
}

func (m editorModel) Init() tea.Cmd { return nil }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Increase):
			if m.cursor < len(m.rows) {
				m.rows[m.cursor].duration++
			}
		case key.Matches(msg, m.keys.Decrease):
			if m.cursor < len(m.rows) && m.rows[m.cursor].duration > 0 {
				m.rows[m.cursor].duration--
			}
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.saved = false
			return m, tea.Quit
		}
	}
	return m, nil
}

// ChangedDurations returns the item durations that differ from the loaded pace.
func (m editorModel) ChangedDurations() map[string]int {
	changed := make(map[string]int)
	for _, r := range m.rows {
		if r.duration != r.original {
			changed[r.itemID] = r.duration
		}
	}
	return changed
}

// currentItems rebuilds the item sequence with the edited durations applied.
func (m editorModel) currentItems() []*domain.PaceItem {
	items := make([]*domain.PaceItem, len(m.rows))
	for i, r := range m.rows {
		items[i] = &domain.PaceItem{ID: r.itemID, Duration: r.duration}
	}
	return items
}

// projection recomputes the end date and budget fit from the edited rows.
func (m editorModel) projection() (end time.Time, used int, fits bool, ok bool) {
	items := m.currentItems()
	end, ok = pacing.ProjectedEndDate(m.pace, items, m.blackouts)
	if !ok {
		return end, 0, true, false
	}
	used = pacing.InclusiveDaySpan(m.pace.StartDate, end)
	fits = m.pace.TimeToCompleteCalendarDays == 0 || used <= m.pace.TimeToCompleteCalendarDays
	return end, used, fits, true
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Header("Pace Editor") + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString("  " + formatter.Dim("This pace has no items.") + "\n")
		return b.String()
	}

	lastModule := ""
	for i, r := range m.rows {
		if r.moduleName != lastModule {
			b.WriteString("  " + formatter.StyleBold.Render(r.moduleName) + "\n")
			lastModule = r.moduleName
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		days := fmt.Sprintf("%2dd", r.duration)
		if r.duration != r.original {
			days = formatter.StyleYellow.Render(days + "*")
		} else {
			days = formatter.StyleFg.Render(days)
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s %s\n",
			cursor, days, r.title, formatter.Dim(string(r.itemType))))
	}

	b.WriteString("\n")
	if end, used, fits, ok := m.projection(); ok {
		b.WriteString("  " + formatter.RenderBudgetBar(used, m.pace.TimeToCompleteCalendarDays, 20) + "\n")
		b.WriteString(fmt.Sprintf("  Projected end %s  %s\n",
			end.Format("2006-01-02"), formatter.BudgetIndicator(fits)))
	}

	b.WriteString("\n  " + m.helpLine() + "\n")
	return b.String()
}

func (m editorModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Increase, m.keys.Decrease, m.keys.Save, m.keys.Cancel,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, kb.Help().Key+" "+kb.Help().Desc)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
