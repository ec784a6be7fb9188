package service

import (
	"binnacle_system/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithSecret(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailWithSecret(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(id uint, hash string) error {
	args := m.Called(id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(bet *domain.Bet) error {
	args := m.Called(bet)
	return args.Error(0)
}

func (m *MockBetRepository) FindByIDForUser(id, userID uint) (*domain.Bet, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

func (m *MockBetRepository) UpdateSettlement(id uint, status domain.BetStatus, profit float64) error {
	args := m.Called(id, status, profit)
	return args.Error(0)
}

func (m *MockBetRepository) ListByUser(userID uint) ([]domain.Bet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockBetRepository) SettledStats(userID uint) (float64, int64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}
