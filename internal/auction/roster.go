package auction

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cricbid/auctionctl/internal/errors"
)

// Teams fetches the team roster with current budgets
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.getJSON(ctx, "/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Players fetches the full player list
func (c *Client) Players(ctx context.Context) ([]Player, error) {
	var players []Player
	if err := c.getJSON(ctx, "/players", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// FindPlayer refetches the player list and filters by id client-side,
// the way the viewer loads a selected player's details.
func (c *Client) FindPlayer(ctx context.Context, playerID string) (*Player, bool, error) {
	players, err := c.Players(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range players {
		if players[i].ID == playerID {
			return &players[i], true, nil
		}
	}
	return nil, false, nil
}

// PendingPlayers lists players awaiting a base price (admin only)
func (c *Client) PendingPlayers(ctx context.Context) ([]Player, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/admin/players/pending", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp, "failed to load pending players")
	}

	var pr pendingResponse
	if err := decodeJSON(resp.Body, &pr); err != nil {
		return nil, err
	}
	return pr.Players, nil
}

// SetBasePrice assigns a base price to a pending player (admin only)
func (c *Client) SetBasePrice(ctx context.Context, playerID string, price float64) error {
	path := fmt.Sprintf("/admin/player/%s/base-price", playerID)
	payload := map[string]float64{"price": price}
	_, err := c.postJSON(ctx, http.MethodPatch, path, payload, "Failed to set base price")
	return err
}

// RegisterPlayer submits a public player registration as a multipart form.
// Name, role, and category are mandatory on the platform side; they are
// checked locally so an incomplete registration never reaches the network.
func (c *Client) RegisterPlayer(ctx context.Context, reg PlayerRegistration) error {
	if reg.FullName == "" || reg.Role == "" || reg.Category == "" {
		return errors.New(errors.ErrCodeRegistrationInvalid, "name, role, and category are required")
	}

	fields := map[string]string{
		"full_name":     reg.FullName,
		"role":          reg.Role,
		"category":      reg.Category,
		"batting_style": reg.BattingStyle,
		"bowling_style": reg.BowlingStyle,
		"bio":           reg.Bio,
	}
	if reg.Age > 0 {
		fields["age"] = strconv.Itoa(reg.Age)
	}

	body, contentType, err := multipartBody(fields)
	if err != nil {
		return err
	}

	header := http.Header{"Content-Type": []string{contentType}}
	resp, err := c.Do(ctx, http.MethodPost, "/players/public_register", body, header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := interpretEnvelope(resp, "Registration failed"); err != nil {
		return err
	}
	return nil
}
