package domain

// Prediction Model, rows are produced by an offline model and ingested by admins
type Prediction struct {
	ID                uint    `gorm:"primaryKey" json:"id"`                    // Primary key
	League            League  `gorm:"size:10;index;not null" json:"league"`    // NBA or NFL
	MatchID           string  `gorm:"size:64;not null" json:"match_id"`        // External match reference
	MatchTitle        string  `gorm:"size:200" json:"match_title"`             // Human-readable match title
	PredictedWinner   string  `gorm:"size:120;not null" json:"predicted_winner"` // Team the model favors
	ConfidencePercent float64 `gorm:"type:decimal(5,2)" json:"confidence_percent"` // Model confidence, 0-100
	StartsAt          int64   `gorm:"index" json:"starts_at"`                  // Scheduled start in milliseconds
	CreatedAt         int64   `gorm:"autoCreateTime:milli" json:"created_at"`  // Timestamp of creation in milliseconds
}
