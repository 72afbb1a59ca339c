package entity

import (
	"gorm.io/gorm"
)

// Singleton row. Admin forms patch individual fields, so updates are
// field-level, not whole-object replace.
type SiteContent struct {
	gorm.Model
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	AboutTitle   string `json:"aboutTitle"`
	AboutText    string `json:"aboutText"`
	FooterText   string `json:"footerText"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	WorkingHours string `json:"workingHours"`
}
