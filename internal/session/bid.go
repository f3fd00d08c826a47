package session

import (
	"context"
	"math"

	"github.com/cricbid/auctionctl/internal/auction"
	"github.com/cricbid/auctionctl/internal/errors"
)

// Refetch holds the post-bid state refreshes. The three fetches are
// independent: a failed one leaves its field nil and the others intact.
type Refetch struct {
	Status  *auction.Status
	Teams   []auction.Team
	Players []auction.Player
}

// PlaceBid validates a bid locally, submits it, and on acceptance refetches
// the auction status, team budgets, and player list.
//
// Local validation is advisory; the server remains authoritative. An invalid
// amount or missing team never reaches the network.
func (s *Session) PlaceBid(ctx context.Context, playerID, teamID string, amount float64) (*Refetch, error) {
	if !s.CanBid() {
		if s.User() == nil {
			return nil, errors.New(errors.ErrCodeNotLoggedIn, "Please login first").
				WithSuggestion("run 'auctionctl auth login'")
		}
		return nil, errors.New(errors.ErrCodeBidRejected, "bidding is disabled in watch mode")
	}

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.New(errors.ErrCodeBidInvalidAmount, "Enter a valid bid amount")
	}

	if teamID == "" {
		if u := s.User(); u != nil {
			teamID = u.TeamID
		}
	}
	if teamID == "" {
		return nil, errors.New(errors.ErrCodeBidNoTeam, "Select a team first")
	}

	if err := s.api.PlaceBid(ctx, playerID, teamID, amount); err != nil {
		return nil, err
	}

	return s.refetchAfterBid(ctx), nil
}

// refetchAfterBid refreshes the three shared views. Order-insensitive and
// non-transactional: each failure is logged and skipped.
func (s *Session) refetchAfterBid(ctx context.Context) *Refetch {
	var r Refetch

	if st, err := s.api.AuctionStatus(ctx); err != nil {
		s.logger.WithError(err).Warn("status refresh after bid failed")
	} else {
		r.Status = &st
	}

	if teams, err := s.api.Teams(ctx); err != nil {
		s.logger.WithError(err).Warn("team refresh after bid failed")
	} else {
		r.Teams = teams
	}

	if players, err := s.api.Players(ctx); err != nil {
		s.logger.WithError(err).Warn("player refresh after bid failed")
	} else {
		r.Players = players
	}

	return &r
}

// MarkSold finalizes a player's sale after an explicit confirmation step.
// When confirm returns false nothing is sent and sold is false. On success
// only the player list is refreshed.
func (s *Session) MarkSold(ctx context.Context, playerID string, confirm func() bool) (players []auction.Player, sold bool, err error) {
	if confirm != nil && !confirm() {
		return nil, false, nil
	}

	if err := s.api.MarkSold(ctx, playerID); err != nil {
		return nil, false, err
	}

	players, perr := s.api.Players(ctx)
	if perr != nil {
		s.logger.WithError(perr).Warn("player refresh after sold failed")
	}
	return players, true, nil
}
