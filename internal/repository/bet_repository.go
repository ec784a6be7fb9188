package repository

import (
	"errors"

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// BetRepository is the narrow persistence contract the bet service depends on.
// Every read and update is scoped to the owning user.
type BetRepository interface {
	Create(bet *domain.Bet) error
	FindByIDForUser(id, userID uint) (*domain.Bet, error)
	UpdateSettlement(id uint, status domain.BetStatus, profit float64) error
	ListByUser(userID uint) ([]domain.Bet, error)
	SettledStats(userID uint) (totalProfit float64, totalBets int64, err error)
}

// GormBetRepository is the MySQL-backed BetRepository
type GormBetRepository struct {
	db *gorm.DB
}

// NewBetRepository wraps a gorm handle in a BetRepository
func NewBetRepository(db *gorm.DB) *GormBetRepository {
	return &GormBetRepository{db: db}
}

// Create inserts a new bet row
func (r *GormBetRepository) Create(bet *domain.Bet) error {
	return r.db.Create(bet).Error
}

// FindByIDForUser returns the bet only if it belongs to userID; a bet owned
// by someone else is indistinguishable from a missing one
func (r *GormBetRepository) FindByIDForUser(id, userID uint) (*domain.Bet, error) {
	var bet domain.Bet
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&bet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBetNotFound
		}
		return nil, err
	}
	return &bet, nil
}

// UpdateSettlement writes status and profit together in one row update
func (r *GormBetRepository) UpdateSettlement(id uint, status domain.BetStatus, profit float64) error {
	return r.db.Model(&domain.Bet{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "profit": profit}).Error
}

// ListByUser returns all of a user's bets, newest-created first
func (r *GormBetRepository) ListByUser(userID uint) ([]domain.Bet, error) {
	var bets []domain.Bet
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bets).Error
	return bets, err
}

// SettledStats aggregates profit and count over the user's settled bets
func (r *GormBetRepository) SettledStats(userID uint) (float64, int64, error) {
	var row struct {
		TotalProfit float64
		TotalBets   int64
	}
	err := r.db.Model(&domain.Bet{}).
		Select("COALESCE(SUM(profit), 0) AS total_profit, COUNT(*) AS total_bets").
		Where("user_id = ? AND status <> ?", userID, domain.BetPending).
		Scan(&row).Error
	return row.TotalProfit, row.TotalBets, err
}
