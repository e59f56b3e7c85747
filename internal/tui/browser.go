package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamupapp/teamup/internal/api"
)

var browserTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// projectItem adapts a project to the bubbles list item interface
type projectItem struct {
	project api.Project
}

func (i projectItem) Title() string {
	return i.project.Name
}

func (i projectItem) Description() string {
	var parts []string
	if i.project.Sphere != "" {
		parts = append(parts, i.project.Sphere)
	}
	if i.project.Type != "" {
		parts = append(parts, i.project.Type)
	}
	parts = append(parts, fmt.Sprintf("%d members", len(i.project.Members)))
	return strings.Join(parts, " · ")
}

func (i projectItem) FilterValue() string {
	return i.project.Name + " " + i.project.Sphere + " " + strings.Join(i.project.RequiredSkills, " ")
}

// browserModel is the bubbletea model for interactive project selection
type browserModel struct {
	list     list.Model
	selected *api.Project
	quitting bool
}

func newBrowserModel(projects []api.Project) browserModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Projects"
	l.Styles.Title = browserTitleStyle

	return browserModel{list: l}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				project := item.project
				m.selected = &project
			}
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// BrowseProjects runs an interactive project picker and returns the selected
// project, or nil when the user dismissed the list.
func BrowseProjects(projects []api.Project) (*api.Project, error) {
	model := newBrowserModel(projects)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("project browser failed: %w", err)
	}

	if m, ok := final.(browserModel); ok {
		return m.selected, nil
	}
	return nil, nil
}
