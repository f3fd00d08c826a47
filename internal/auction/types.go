package auction

// Player status values as reported by the platform
const (
	StatusAvailable = "available"
	StatusInAuction = "in_auction"
	StatusSold      = "sold"
)

// User is the authenticated identity returned by /me
type User struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	// TeamID is empty for users not bound to a team
	TeamID string `json:"team_id"`
}

// Team is the read-only team projection returned by /teams
type Team struct {
	ID     string  `json:"_id"`
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
	// Players is present only on the viewer roster payload; the element
	// shape is server-defined and only its count matters client-side
	Players []any `json:"players,omitempty"`
}

// Player is the read-only player projection returned by /players
type Player struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
	BasePrice       *float64 `json:"base_price"`
	FinalBid        *float64 `json:"final_bid"`
	TeamID          string   `json:"team_id"`
	TeamName        string   `json:"team_name"`
	AffiliationRole string   `json:"affiliation_role"`
	Age             int      `json:"age"`
	BattingStyle    string   `json:"batting_style"`
	BowlingStyle    string   `json:"bowling_style"`
	Bio             string   `json:"bio"`
}

// PlayerRegistration is the multipart form posted to /players/public_register
type PlayerRegistration struct {
	FullName     string
	Role         string
	Category     string
	Age          int
	BattingStyle string
	BowlingStyle string
	Bio          string
}

// Status is the auction state returned by /auction/status
type Status struct {
	Active          bool   `json:"active"`
	CurrentPlayerID string `json:"current_player_id"`
}

// envelope is the {ok, detail, message} shape shared by mutating endpoints.
// FastAPI-style errors carry the reason in detail; success messages in message.
type envelope struct {
	OK      bool   `json:"ok"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// reason returns the server-provided failure reason with a standardized
// precedence: detail, then message, then the given fallback.
func (e envelope) reason(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

type loginResponse struct {
	OK           bool   `json:"ok"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Detail       string `json:"detail"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	Detail      string `json:"detail"`
}

type meResponse struct {
	OK     bool   `json:"ok"`
	User   *User  `json:"user"`
	Detail string `json:"detail"`
}

type pendingResponse struct {
	OK      bool     `json:"ok"`
	Players []Player `json:"players"`
	Detail  string   `json:"detail"`
}
