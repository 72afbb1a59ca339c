package entity

import (
	"time"

	"gorm.io/gorm"
)

// Job application from the careers page. Write-once, admin-deletable,
// no status workflow.
type Application struct {
	gorm.Model
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
