package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/islandertools/islander/pkg/edgeio"
	"github.com/islandertools/islander/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command for browsing components
// interactively.
func (c *CLI) exploreCommand() *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse connected components interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(false)
			if err != nil {
				return err
			}
			result, err := runner.ExecuteFile(cmd.Context(), args[0], pipeline.Options{Engine: engine})
			if err != nil {
				return err
			}

			model := NewComponentListModel(edgeio.SortedComponents(result.Partition))
			p := tea.NewProgram(model)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run explorer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "e", c.Config.Engine,
		fmt.Sprintf("component engine: %v", pipeline.Engines()))

	return cmd
}

// ComponentListModel is the bubbletea model for browsing components. The
// left pane lists components by size; the selection's members are shown
// inline below it.
type ComponentListModel struct {
	Components [][]string
	Cursor     int
	Height     int
	Offset     int
}

// NewComponentListModel creates a new component list model.
func NewComponentListModel(comps [][]string) ComponentListModel {
	return ComponentListModel{
		Components: comps,
		Cursor:     0,
		Height:     15,
		Offset:     0,
	}
}

func (m ComponentListModel) Init() tea.Cmd {
	return nil
}

func (m ComponentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g":
			m.Cursor, m.Offset = 0, 0
		case "G":
			m.Cursor = len(m.Components) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ComponentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Connected Components"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Components) == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Components) {
		end = len(m.Components)
	}

	for i := m.Offset; i < end; i++ {
		comp := m.Components[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		label := fmt.Sprintf("component %d", i+1)
		size := listDimStyle.Render(fmt.Sprintf(" (%d vertices)", len(comp)))
		b.WriteString(cursor + style.Render(label) + size + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("members: "))
	b.WriteString(StyleValue.Render(memberPreview(m.Components[m.Cursor], 12)))
	b.WriteString("\n")

	return b.String()
}

// memberPreview joins up to max members, eliding the rest.
func memberPreview(members []string, max int) string {
	if len(members) <= max {
		return strings.Join(members, " ")
	}
	shown := strings.Join(members[:max], " ")
	return fmt.Sprintf("%s … +%d more", shown, len(members)-max)
}
