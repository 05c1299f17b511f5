package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/blackroad/agentworld/pkg/world"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for interactive scene browsing.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [scene.json]",
		Short: "Browse a scene interactively in the terminal",
		Long: `Browse a scene interactively in the terminal.

The preview command shows all placements in a scrollable table with their
positions, sizes, and relations. Use the arrow keys (or j/k) to navigate
and 1/2/3/0 to filter by category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := world.ReadSceneFile(args[0])
			if err != nil {
				return fmt.Errorf("load scene %s: %w", args[0], err)
			}

			model := NewSceneModel(scene)
			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}
}

// =============================================================================
// SceneModel - Interactive placement browser
// =============================================================================

// SceneModel is the bubbletea model for browsing a scene's placements.
type SceneModel struct {
	Scene  world.Scene
	Rows   []world.Placement
	Filter string // category filter; empty means all
	Cursor int
	Height int
	Offset int
}

// NewSceneModel creates a new scene browser model.
func NewSceneModel(scene world.Scene) SceneModel {
	m := SceneModel{
		Scene:  scene,
		Height: 15,
	}
	m.applyFilter()
	return m
}

// applyFilter rebuilds the visible rows for the current category filter.
func (m *SceneModel) applyFilter() {
	m.Rows = m.Rows[:0]
	for _, p := range m.Scene.Placements {
		if m.Filter == "" || p.Category == m.Filter {
			m.Rows = append(m.Rows, p)
		}
	}
	if m.Cursor >= len(m.Rows) {
		m.Cursor = 0
	}
	m.Offset = 0
}

func (m SceneModel) Init() tea.Cmd {
	return nil
}

func (m SceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "0":
			m.Filter = ""
			m.applyFilter()
		case "1":
			m.Filter = world.CategoryLeader
			m.applyFilter()
		case "2":
			m.Filter = world.CategoryTeacher
			m.applyFilter()
		case "3":
			m.Filter = world.CategoryStudent
			m.applyFilter()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SceneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scene Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  1 leaders  2 teachers  3 students  0 all  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		parent := p.ParentID
		if parent == "" {
			parent = "—"
		}

		rows = append(rows, []string{
			cursor,
			p.ID,
			p.Category,
			fmt.Sprintf("%.0f, %.0f, %.0f", p.Position.X, p.Position.Y, p.Position.Z),
			fmt.Sprintf("%.0f", p.Size),
			p.Color.Hex(),
			parent,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Category", "Position", "Size", "Color", "Parent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			p := m.Rows[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				return base.Foreground(categoryColor(p.Category)).Bold(true)
			}
			if col == 3 || col == 4 || col == 6 {
				return base.Foreground(colorDim)
			}
			return base.Foreground(categoryColor(p.Category))
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	counts := world.CountByCategory(m.Scene.Placements)
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d leaders, %d teachers, %d students",
		m.Cursor+1, len(m.Rows),
		counts[world.CategoryLeader], counts[world.CategoryTeacher], counts[world.CategoryStudent])))

	return b.String()
}

// categoryColor maps a placement category to a terminal color.
func categoryColor(cat string) lipgloss.Color {
	switch cat {
	case world.CategoryLeader:
		return colorYellow
	case world.CategoryTeacher:
		return colorBlue
	case world.CategoryStudent:
		return colorGreen
	default:
		return colorWhite
	}
}
