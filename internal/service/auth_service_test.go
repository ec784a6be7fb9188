package service

import (
	"testing"

	"binnacle_system/internal/apperrors"
	"binnacle_system/internal/auth"
	"binnacle_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "unit-test-secret"

func mustHash(t *testing.T, secret string) string {
	t.Helper()
	hash, err := auth.HashSecret(secret)
	assert.NoError(t, err)
	return hash
}

func TestAuthService_Signup(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	var storedHash string
	mockRepo.On("EmailExists", "new@x.com").Return(false, nil)
	mockRepo.On("Create", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.User).ID = 7
	}).Return(nil)
	mockRepo.On("UpdateRefreshTokenHash", uint(7), mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
		storedHash = args.String(1)
	}).Return(nil)

	pair, err := service.Signup("new@x.com", "password123", "New User")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// The stored hash must correspond to the refresh token just issued
	assert.True(t, auth.VerifySecret(pair.RefreshToken, storedHash))

	claims, err := auth.NewIssuer(testSecret).Parse(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "new@x.com", claims.Email)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	mockRepo.On("EmailExists", "dup@x.com").Return(true, nil)

	_, err := service.Signup("dup@x.com", "password123", "")
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	user := &domain.User{ID: 3, Email: "real@x.com", Password: mustHash(t, "correct-horse")}
	mockRepo.On("FindByEmailWithSecret", "real@x.com").Return(user, nil)
	mockRepo.On("UpdateRefreshTokenHash", uint(3), mock.AnythingOfType("string")).Return(nil)

	pair, err := service.Login("real@x.com", "correct-horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	user := &domain.User{ID: 3, Email: "real@x.com", Password: mustHash(t, "correct-horse")}
	mockRepo.On("FindByEmailWithSecret", "nouser@x.com").Return(nil, apperrors.ErrUserNotFound)
	mockRepo.On("FindByEmailWithSecret", "real@x.com").Return(user, nil)

	_, errUnknown := service.Login("nouser@x.com", "whatever")
	_, errWrongPw := service.Login("real@x.com", "wrongpassword")

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
	mockRepo.AssertNotCalled(t, "UpdateRefreshTokenHash", mock.Anything, mock.Anything)
}

func TestAuthService_RefreshRotation(t *testing.T) {
	mockRepo := &MockUserRepository{}
	issuer := auth.NewIssuer(testSecret)
	service := NewAuthService(mockRepo, issuer)

	first, err := issuer.IssuePair(1, "a@x.com")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Email: "a@x.com", RefreshTokenHash: mustHash(t, first.RefreshToken)}

	mockRepo.On("FindByIDWithSecret", uint(1)).Return(user, nil)
	mockRepo.On("UpdateRefreshTokenHash", uint(1), mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
		user.RefreshTokenHash = args.String(1)
	}).Return(nil)

	second, err := service.Refresh(1, first.RefreshToken)
	assert.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old refresh token died with the rotation
	_, err = service.Refresh(1, first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

	// The new one works
	_, err = service.Refresh(1, second.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Refresh_UnknownUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	mockRepo.On("FindByIDWithSecret", uint(42)).Return(nil, apperrors.ErrUserNotFound)

	_, err := service.Refresh(42, "any-token")
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestAuthService_LogoutIdempotent(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	user := &domain.User{ID: 5, Email: "b@x.com", RefreshTokenHash: ""}
	mockRepo.On("UpdateRefreshTokenHash", uint(5), "").Return(nil).Twice()
	mockRepo.On("FindByIDWithSecret", uint(5)).Return(user, nil)

	assert.NoError(t, service.Logout(5))
	assert.NoError(t, service.Logout(5))

	// No session means refresh is denied
	_, err := service.Refresh(5, "anything")
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Profile(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewAuthService(mockRepo, auth.NewIssuer(testSecret))

	public := &domain.User{ID: 9, Email: "p@x.com", Role: domain.RoleUser, Status: domain.StatusActive}
	mockRepo.On("FindByID", uint(9)).Return(public, nil)

	user, err := service.Profile(9)
	assert.NoError(t, err)
	assert.Equal(t, "p@x.com", user.Email)
	assert.Empty(t, user.Password)
	assert.Empty(t, user.RefreshTokenHash)
}
