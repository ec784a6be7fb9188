package domain

// Pick Model, a prediction saved by a user
type Pick struct {
	ID           uint  `gorm:"primaryKey" json:"id"`                                    // Primary key
	UserID       uint  `gorm:"uniqueIndex:idx_user_prediction;not null" json:"user_id"` // Owning user
	PredictionID uint  `gorm:"uniqueIndex:idx_user_prediction;not null" json:"prediction_id"` // Saved prediction
	CreatedAt    int64 `gorm:"autoCreateTime:milli" json:"created_at"`                  // Timestamp of creation in milliseconds
}
