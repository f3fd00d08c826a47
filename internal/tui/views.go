package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/cricbid/auctionctl/internal/auction"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginLeft(2)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2).
			MarginTop(1)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// View renders the viewer
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("🏏 Auction Watch"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	switch m.view {
	case viewPlayers:
		b.WriteString(m.playerListView())
	case viewPlayerDetail:
		b.WriteString(m.playerDetailView())
	default:
		b.WriteString(m.teamTable.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("⚠ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.helpLine())
	return b.String()
}

func (m WatchModel) statusLine() string {
	state := pausedStyle.Render("● paused")
	if m.status.Active {
		state = liveStyle.Render("● live")
	}
	if m.lastUpdate.IsZero() {
		return state
	}
	return fmt.Sprintf("%s  updated %s", state, m.lastUpdate.Format("15:04:05"))
}

func (m WatchModel) playerListView() string {
	if len(m.players) == 0 {
		return itemStyle.Render("No players registered yet") + "\n"
	}

	var b strings.Builder
	for i, p := range m.players {
		style := itemStyle
		cursor := "  "
		if i == m.cursor {
			style = selectedItemStyle
			cursor = "→ "
		}

		line := fmt.Sprintf("%s%s | %s | %s", cursor, p.Name, p.Category, playerOutcome(p))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m WatchModel) playerDetailView() string {
	p := m.detail
	if p == nil {
		return itemStyle.Render("Player not found") + "\n"
	}

	details := []struct {
		key   string
		value string
	}{
		{"Name", p.Name},
		{"Category", p.Category},
		{"Status", p.Status},
		{"Base Price", priceString(p.BasePrice)},
		{"Final Bid", priceString(p.FinalBid)},
		{"Team", p.TeamName},
		{"Batting", p.BattingStyle},
		{"Bowling", p.BowlingStyle},
	}

	var b strings.Builder
	for _, d := range details {
		if d.value == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-12s:", d.key)))
		b.WriteString(" ")
		b.WriteString(detailValueStyle.Render(d.value))
		b.WriteString("\n")
	}
	if p.Bio != "" {
		b.WriteString("\n  ")
		b.WriteString(detailValueStyle.Render(p.Bio))
		b.WriteString("\n")
	}
	return b.String()
}

func (m WatchModel) helpLine() string {
	switch m.view {
	case viewPlayers:
		return helpStyle.Render("↑/↓: navigate | enter: details | esc: teams | q: quit")
	case viewPlayerDetail:
		return helpStyle.Render("esc: back | q: quit")
	default:
		return helpStyle.Render("↑/↓: scroll | p: players | q: quit")
	}
}

// playerOutcome is the one-line auction outcome shown in the player list
func playerOutcome(p auction.Player) string {
	switch p.Status {
	case auction.StatusSold:
		if p.TeamName != "" {
			return fmt.Sprintf("sold to %s for %s", p.TeamName, priceString(p.FinalBid))
		}
		return "sold"
	case auction.StatusInAuction:
		return "on the block"
	default:
		return "available at " + priceString(p.BasePrice)
	}
}

func priceString(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f", *v)
}
