// Package tui holds the BubbleTea front-ends for the auction console.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cricbid/auctionctl/internal/auction"
)

// watchView selects what the right-hand pane of the viewer shows
type watchView int

const (
	viewTeams watchView = iota
	viewPlayers
	viewPlayerDetail
)

// watchKeyMap defines the viewer's keyboard shortcuts
type watchKeyMap struct {
	Quit    key.Binding
	Players key.Binding
	Teams   key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
}

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Players: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "players"),
	),
	Teams: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "teams"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h"),
		key.WithHelp("esc", "back"),
	),
}

// snapshotMsg carries one poll result into the model
type snapshotMsg auction.TeamSnapshot

// pollClosedMsg signals that the poller shut down
type pollClosedMsg struct{}

// statusMsg carries the auction live/paused state
type statusMsg struct {
	status auction.Status
	err    error
}

// playersMsg carries a player list fetch
type playersMsg struct {
	players []auction.Player
	err     error
}

// playerDetailMsg carries the on-demand single-player lookup
type playerDetailMsg struct {
	player *auction.Player
	found  bool
	err    error
}

// WatchModel is the read-only auction viewer. Team budgets refresh on the
// poller's period; the player list and player details load on demand.
type WatchModel struct {
	client *auction.Client
	poller *auction.Poller

	teamTable  table.Model
	status     auction.Status
	players    []auction.Player
	cursor     int
	detail     *auction.Player
	view       watchView
	lastUpdate time.Time
	err        error
	width      int
	height     int
	quitting   bool
}

// NewWatchModel creates the viewer model around a running poller
func NewWatchModel(client *auction.Client, poller *auction.Poller) WatchModel {
	columns := []table.Column{
		{Title: "Team", Width: 24},
		{Title: "Budget", Width: 12},
		{Title: "Players", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())

	return WatchModel{
		client:    client,
		poller:    poller,
		teamTable: t,
		view:      viewTeams,
	}
}

// waitForSnapshot blocks on the poller's channel for the next team refresh
func waitForSnapshot(p *auction.Poller) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-p.Updates()
		if !ok {
			return pollClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m WatchModel) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		st, err := m.client.AuctionStatus(context.Background())
		return statusMsg{status: st, err: err}
	}
}

func (m WatchModel) fetchPlayers() tea.Cmd {
	return func() tea.Msg {
		players, err := m.client.Players(context.Background())
		return playersMsg{players: players, err: err}
	}
}

func (m WatchModel) fetchPlayerDetail(id string) tea.Cmd {
	return func() tea.Msg {
		p, found, err := m.client.FindPlayer(context.Background(), id)
		return playerDetailMsg{player: p, found: found, err: err}
	}
}

// Init starts the snapshot wait and the initial status fetch
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.poller), m.fetchStatus())
}

// Update handles messages and updates the model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.lastUpdate = msg.At
		m.err = msg.Err
		if msg.Err == nil {
			m.teamTable.SetRows(teamRows(msg.Teams))
		}
		// Re-arm for the next poll; status piggybacks on the same period.
		return m, tea.Batch(waitForSnapshot(m.poller), m.fetchStatus())

	case pollClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case statusMsg:
		if msg.err == nil {
			m.status = msg.status
		}
		return m, nil

	case playersMsg:
		m.err = msg.err
		if msg.err == nil {
			m.players = msg.players
			if m.cursor >= len(m.players) {
				m.cursor = 0
			}
		}
		return m, nil

	case playerDetailMsg:
		m.err = msg.err
		if msg.err == nil && msg.found {
			m.detail = msg.player
			m.view = viewPlayerDetail
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, watchKeys.Quit):
		m.quitting = true
		m.poller.Stop()
		return m, tea.Quit

	case key.Matches(msg, watchKeys.Players):
		if m.view == viewTeams {
			m.view = viewPlayers
			return m, m.fetchPlayers()
		}

	case key.Matches(msg, watchKeys.Teams):
		if m.view != viewTeams {
			m.view = viewTeams
			m.detail = nil
		}

	case key.Matches(msg, watchKeys.Back):
		switch m.view {
		case viewPlayerDetail:
			m.view = viewPlayers
			m.detail = nil
		case viewPlayers:
			m.view = viewTeams
		}

	case key.Matches(msg, watchKeys.Up):
		if m.view == viewPlayers && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, watchKeys.Down):
		if m.view == viewPlayers && m.cursor < len(m.players)-1 {
			m.cursor++
		}

	case key.Matches(msg, watchKeys.Select):
		if m.view == viewPlayers && m.cursor < len(m.players) {
			return m, m.fetchPlayerDetail(m.players[m.cursor].ID)
		}
	}

	if m.view == viewTeams {
		var cmd tea.Cmd
		m.teamTable, cmd = m.teamTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

// teamRows converts a team list into table rows
func teamRows(teams []auction.Team) []table.Row {
	rows := make([]table.Row, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, table.Row{
			t.Name,
			fmt.Sprintf("%.0f", t.Budget),
			fmt.Sprintf("%d", len(t.Players)),
		})
	}
	return rows
}

// RunWatch starts the poller and runs the viewer until quit. The poller is
// stopped before returning regardless of how the program ends.
func RunWatch(ctx context.Context, client *auction.Client, interval time.Duration) error {
	poller := auction.NewPoller(client, interval)
	poller.Run(ctx)
	defer poller.Stop()

	model := NewWatchModel(client, poller)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running watch UI: %w", err)
	}
	return nil
}
