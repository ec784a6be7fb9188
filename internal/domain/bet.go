package domain

// BetStatus enumerates the settlement states of a bet
type BetStatus string

// Bet statuses
const (
	BetPending BetStatus = "PENDING" // Not yet settled
	BetWon     BetStatus = "WON"     // Stake returned plus winnings
	BetLost    BetStatus = "LOST"    // Stake lost
	BetPush    BetStatus = "PUSH"    // Stake returned, no gain or loss
)

// League enumerates supported leagues
type League string

// Supported leagues
const (
	LeagueNBA League = "NBA" // Basketball
	LeagueNFL League = "NFL" // American football
)

// Bet Model
type Bet struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	UserID     uint      `gorm:"index;not null" json:"user_id"`                  // Owning user
	Stake      float64   `gorm:"type:decimal(12,2);not null" json:"stake"`       // Wagered amount, >= 1
	Odds       float64   `gorm:"type:decimal(6,2);not null" json:"odds"`         // Decimal odds, >= 1.01, payout = stake * odds
	EvPercent  *float64  `gorm:"type:decimal(6,2)" json:"ev_percent,omitempty"`  // Optional model-supplied expected value percent
	Status     BetStatus `gorm:"size:10;default:PENDING" json:"status"`          // Settlement status
	Profit     float64   `gorm:"type:decimal(12,2);default:0" json:"profit"`     // Derived at settlement, never set by callers
	MatchID    string    `gorm:"size:64;not null" json:"match_id"`               // External match reference
	League     League    `gorm:"size:10;not null" json:"league"`                 // NBA or NFL
	MatchTitle string    `gorm:"size:200" json:"match_title,omitempty"`          // Optional human-readable match title
	CreatedAt  int64     `gorm:"autoCreateTime:milli" json:"created_at"`         // Timestamp of creation in milliseconds
}

// Settled reports whether the status counts toward bankroll stats
func (s BetStatus) Settled() bool {
	return s == BetWon || s == BetLost || s == BetPush
}
