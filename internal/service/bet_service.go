package service

import (
	"math"

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/domain"
	"binnacle_system/internal/repository"

	"github.com/sirupsen/logrus"
)

// BetService owns bet placement, settlement arithmetic and bankroll stats
type BetService struct {
	bets repository.BetRepository
}

// NewBetService builds a BetService over its store
func NewBetService(bets repository.BetRepository) *BetService {
	return &BetService{bets: bets}
}

// BankrollStats is the aggregate view over a user's settled bets
type BankrollStats struct {
	TotalProfit float64 `json:"totalProfit"` // Signed sum of profit over settled bets
	TotalBets   int64   `json:"totalBets"`   // Count of settled bets
}

// PlaceBet records a new PENDING bet for a user. The HTTP layer validates
// ranges; garbage is still rejected here.
func (s *BetService) PlaceBet(userID uint, stake, odds float64, matchID string, league domain.League, evPercent *float64, matchTitle string) (*domain.Bet, error) {
	if stake < 1 || odds < 1.01 || matchID == "" {
		return nil, apperrors.ErrInvalidBet
	}
	if league != domain.LeagueNBA && league != domain.LeagueNFL {
		return nil, apperrors.ErrInvalidBet
	}
	bet := &domain.Bet{
		UserID:     userID,
		Stake:      stake,
		Odds:       odds,
		EvPercent:  evPercent,
		Status:     domain.BetPending,
		Profit:     0,
		MatchID:    matchID,
		League:     league,
		MatchTitle: matchTitle,
	}
	if err := s.bets.Create(bet); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"bet_id":  bet.ID,
		"stake":   stake,
		"odds":    odds,
		"league":  league,
	}).Info("Bet placed")
	return bet, nil
}

// SettleBet resolves a bet's outcome. Profit is recomputed from the bet's
// current stake and odds, so settling the same bet again just overwrites
// with the same numbers. A bet outside the caller's ownership scope looks
// like a missing one.
func (s *BetService) SettleBet(userID, betID uint, status domain.BetStatus) (*domain.Bet, error) {
	if !status.Settled() && status != domain.BetPending {
		return nil, apperrors.ErrInvalidBet
	}
	bet, err := s.bets.FindByIDForUser(betID, userID)
	if err != nil {
		return nil, err
	}
	profit := ProfitFor(bet.Stake, bet.Odds, status)
	if err := s.bets.UpdateSettlement(bet.ID, status, profit); err != nil {
		return nil, err
	}
	bet.Status = status
	bet.Profit = profit
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"bet_id":  bet.ID,
		"status":  status,
		"profit":  profit,
	}).Info("Bet settled")
	return bet, nil
}

// GetMyBets lists a user's bets, newest-created first
func (s *BetService) GetMyBets(userID uint) ([]domain.Bet, error) {
	return s.bets.ListByUser(userID)
}

// GetBankrollStats recomputes the user's bankroll view from settled bets
func (s *BetService) GetBankrollStats(userID uint) (*BankrollStats, error) {
	profit, count, err := s.bets.SettledStats(userID)
	if err != nil {
		return nil, err
	}
	return &BankrollStats{TotalProfit: roundCents(profit), TotalBets: count}, nil
}

// ProfitFor computes net profit for a stake at decimal odds under a status.
// WON pays stake*odds back, so net winnings are stake*(odds-1); LOST forfeits
// the stake; PUSH and a re-opened PENDING bet carry no gain or loss.
func ProfitFor(stake, odds float64, status domain.BetStatus) float64 {
	switch status {
	case domain.BetWon:
		return roundCents(stake*odds - stake)
	case domain.BetLost:
		return roundCents(-stake)
	default:
		return 0
	}
}

// roundCents keeps profit at the same two-decimal precision as stakes, so
// aggregate sums cannot drift
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
