package auction

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/cricbid/auctionctl/internal/errors"
)

// AuctionStatus reports whether the auction is live. The endpoint is public;
// the viewer polls it without credentials.
func (c *Client) AuctionStatus(ctx context.Context) (Status, error) {
	var st Status
	if err := c.getJSON(ctx, "/auction/status", &st); err != nil {
		return Status{}, err
	}
	return st, nil
}

// StartAuction opens the auction (admin only)
func (c *Client) StartAuction(ctx context.Context) (string, error) {
	env, err := c.postJSON(ctx, http.MethodPost, "/auction/start", nil, "Failed to start auction")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// StopAuction closes the auction (admin only)
func (c *Client) StopAuction(ctx context.Context) (string, error) {
	env, err := c.postJSON(ctx, http.MethodPost, "/auction/stop", nil, "Failed to stop auction")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// bidRequest is the JSON body for /auction/bid
type bidRequest struct {
	PlayerID  string  `json:"player_id"`
	TeamID    string  `json:"team_id"`
	BidAmount float64 `json:"bid_amount"`
}

// PlaceBid submits a bid for a player on behalf of a team.
// The server is authoritative: budget, auction state, and highest-bid checks
// all happen there and come back as rejection reasons.
func (c *Client) PlaceBid(ctx context.Context, playerID, teamID string, amount float64) error {
	payload := bidRequest{PlayerID: playerID, TeamID: teamID, BidAmount: amount}
	if _, err := c.postJSON(ctx, http.MethodPost, "/auction/bid", payload, "Bid failed"); err != nil {
		var ae *errors.AuctionError
		if stderrors.As(err, &ae) && ae.Code == errors.ErrCodeAPIRejected {
			return errors.New(errors.ErrCodeBidRejected, ae.Message)
		}
		return err
	}
	return nil
}

// MarkSold finalizes a player's sale at the current highest bid (admin only)
func (c *Client) MarkSold(ctx context.Context, playerID string) error {
	_, err := c.postJSON(ctx, http.MethodPost, "/auction/sold/"+playerID, nil, "Failed to mark player sold")
	return err
}

// CurrentPlayer returns the player currently on the block, or nil when the
// auction has no current player set.
func (c *Client) CurrentPlayer(ctx context.Context) (*Player, error) {
	st, err := c.AuctionStatus(ctx)
	if err != nil {
		return nil, err
	}
	if st.CurrentPlayerID == "" {
		return nil, nil
	}

	p, found, err := c.FindPlayer(ctx, st.CurrentPlayerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return p, nil
}

// SetCurrentPlayer puts a specific player on the block (admin only)
func (c *Client) SetCurrentPlayer(ctx context.Context, playerID string) error {
	_, err := c.postJSON(ctx, http.MethodPost, "/auction/set_current_player/"+playerID, nil, "Failed to set current player")
	return err
}

type nextPlayerResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Player  *struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"player"`
}

// NextPlayer advances the auction to the next available player (admin only).
// Returns the new current player's name, or "" when none remain.
func (c *Client) NextPlayer(ctx context.Context) (string, error) {
	resp, err := c.Do(ctx, http.MethodPost, "/auction/next_player", nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", responseError(resp, "Failed to advance auction")
	}

	var nr nextPlayerResponse
	if err := decodeJSON(resp.Body, &nr); err != nil {
		return "", err
	}
	if nr.Player == nil {
		return "", nil
	}
	return nr.Player.Name, nil
}
