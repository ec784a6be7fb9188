package repository

import (
	"errors"

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository is the narrow persistence contract the auth service depends on.
// "WithSecret" reads include the password and refresh-token hashes and exist
// only for credential checks; everything else reads public columns.
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByIDWithSecret(id uint) (*domain.User, error)
	FindByEmailWithSecret(email string) (*domain.User, error)
	UpdateRefreshTokenHash(id uint, hash string) error
	EmailExists(email string) (bool, error)
}

// publicColumns keeps hashed secrets out of default reads
var publicColumns = []string{"id", "email", "name", "role", "status", "created_at", "updated_at"}

// GormUserRepository is the MySQL-backed UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository wraps a gorm handle in a UserRepository
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user row
func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		// The unique email index backstops the pre-insert existence check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByID returns a user without secret fields
func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.Select(publicColumns).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDWithSecret returns a user including hashed secrets, for refresh checks
func (r *GormUserRepository) FindByIDWithSecret(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmailWithSecret returns a user including hashed secrets, for login checks
func (r *GormUserRepository) FindByEmailWithSecret(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateRefreshTokenHash replaces the stored refresh-token hash; an empty
// hash means no active session
func (r *GormUserRepository) UpdateRefreshTokenHash(id uint, hash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Update("refresh_token_hash", hash).Error
}

// EmailExists reports whether a user row with this exact email exists
func (r *GormUserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
