package domain

// Role enumerates user account roles
type Role string

// Account roles
const (
	RoleUser      Role = "user"      // Regular user
	RoleAdmin     Role = "admin"     // Administrator
	RoleModerator Role = "moderator" // Moderator
)

// Status enumerates user account statuses
type Status string

// Account statuses
const (
	StatusActive    Status = "active"    // Account in good standing
	StatusSuspended Status = "suspended" // Account suspended
	StatusPending   Status = "pending"   // Account awaiting activation
)

// User Model
type User struct {
	ID               uint   `gorm:"primaryKey" json:"id"`                       // Primary key
	Email            string `gorm:"uniqueIndex;size:320;not null" json:"email"` // Unique email, matched case-sensitively
	Name             string `gorm:"size:120" json:"name,omitempty"`             // Optional display name
	Password         string `gorm:"not null" json:"-"`                          // Hashed password, never serialized
	RefreshTokenHash string `gorm:"size:255" json:"-"`                          // Hash of the one active refresh token, empty when logged out
	Role             Role   `gorm:"size:20;default:user" json:"role"`           // Role: user, admin or moderator
	Status           Status `gorm:"size:20;default:active" json:"status"`       // Account status
	CreatedAt        int64  `gorm:"autoCreateTime:milli" json:"created_at"`     // Timestamp of creation in milliseconds
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`     // Timestamp of last update in milliseconds
}
