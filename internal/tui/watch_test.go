package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cricbid/auctionctl/internal/auction"
	"github.com/cricbid/auctionctl/internal/credentials"
)

func newWatchModel() WatchModel {
	client := auction.NewClient("http://127.0.0.1:1", credentials.NewMemStore())
	return NewWatchModel(client, auction.NewPoller(client, time.Second))
}

// TestNewWatchModel tests model initialization
func TestNewWatchModel(t *testing.T) {
	model := newWatchModel()

	if model.view != viewTeams {
		t.Errorf("Expected viewTeams, got %v", model.view)
	}

	if model.quitting {
		t.Error("Expected quitting to be false by default")
	}

	if model.cursor != 0 {
		t.Errorf("Expected cursor 0, got %d", model.cursor)
	}
}

// TestSnapshotMessage tests that a poll result fills the team table
func TestSnapshotMessage(t *testing.T) {
	model := newWatchModel()

	at := time.Now()
	msg := snapshotMsg{
		Teams: []auction.Team{
			{ID: "T1", Name: "Strikers", Budget: 8000},
			{ID: "T2", Name: "Chargers", Budget: 10000},
		},
		At: at,
	}

	updated, cmd := model.Update(msg)
	m := updated.(WatchModel)

	if len(m.teamTable.Rows()) != 2 {
		t.Errorf("Expected 2 table rows, got %d", len(m.teamTable.Rows()))
	}

	if !m.lastUpdate.Equal(at) {
		t.Errorf("Expected lastUpdate %v, got %v", at, m.lastUpdate)
	}

	if cmd == nil {
		t.Error("Expected a command re-arming the snapshot wait")
	}
}

// TestSnapshotErrorKeepsOldRows tests that failed polls do not clear the table
func TestSnapshotErrorKeepsOldRows(t *testing.T) {
	model := newWatchModel()

	updated, _ := model.Update(snapshotMsg{
		Teams: []auction.Team{{ID: "T1", Name: "Strikers", Budget: 8000}},
		At:    time.Now(),
	})
	m := updated.(WatchModel)

	updated, _ = m.Update(snapshotMsg{Err: errFake, At: time.Now()})
	m = updated.(WatchModel)

	if len(m.teamTable.Rows()) != 1 {
		t.Errorf("Expected stale rows kept on error, got %d rows", len(m.teamTable.Rows()))
	}

	if m.err == nil {
		t.Error("Expected error to be surfaced")
	}
}

// TestPlayersMessage tests loading the player list view
func TestPlayersMessage(t *testing.T) {
	model := newWatchModel()
	model.view = viewPlayers

	updated, _ := model.Update(playersMsg{players: []auction.Player{
		{ID: "P1", Name: "R. Sharma", Category: "Batsman", Status: auction.StatusAvailable},
		{ID: "P2", Name: "A. Khan", Category: "Bowler", Status: auction.StatusSold, TeamName: "Strikers"},
	}})
	m := updated.(WatchModel)

	if len(m.players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(m.players))
	}

	view := m.View()
	if !strings.Contains(view, "R. Sharma") {
		t.Error("Expected player list view to show player names")
	}
}

// TestPlayerDetailMessage tests the on-demand detail view
func TestPlayerDetailMessage(t *testing.T) {
	model := newWatchModel()
	model.view = viewPlayers

	final := 1200.0
	updated, _ := model.Update(playerDetailMsg{
		player: &auction.Player{
			ID: "P1", Name: "R. Sharma", Category: "Batsman",
			Status: auction.StatusSold, TeamName: "Strikers", FinalBid: &final,
		},
		found: true,
	})
	m := updated.(WatchModel)

	if m.view != viewPlayerDetail {
		t.Errorf("Expected viewPlayerDetail, got %v", m.view)
	}

	view := m.View()
	if !strings.Contains(view, "Strikers") {
		t.Error("Expected detail view to show the buying team")
	}
	if !strings.Contains(view, "1200") {
		t.Error("Expected detail view to show the final bid")
	}
}

// TestKeyNavigation tests cursor movement and view switching
func TestKeyNavigation(t *testing.T) {
	model := newWatchModel()
	model.view = viewPlayers
	model.players = []auction.Player{{ID: "P1"}, {ID: "P2"}, {ID: "P3"}}

	down := tea.KeyMsg{Type: tea.KeyDown}
	updated, _ := model.Update(down)
	updated, _ = updated.(WatchModel).Update(down)
	m := updated.(WatchModel)

	if m.cursor != 2 {
		t.Errorf("Expected cursor 2, got %d", m.cursor)
	}

	// Cursor stops at the end of the list
	updated, _ = m.Update(down)
	m = updated.(WatchModel)
	if m.cursor != 2 {
		t.Errorf("Expected cursor clamped at 2, got %d", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(WatchModel)
	if m.view != viewTeams {
		t.Errorf("Expected esc to return to viewTeams, got %v", m.view)
	}
}

// TestQuitStopsPoller tests that quitting tears the model down
func TestQuitStopsPoller(t *testing.T) {
	model := newWatchModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(WatchModel)

	if !m.quitting {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected tea.Quit command")
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "poll failed" }
