package learning

import "gorm.io/gorm"

// LearningPath represents an admin-authored curriculum assigned to interns
type LearningPath struct {
	gorm.Model
	Title         string `json:"title"`
	Description   string `json:"description" gorm:"type:text"`
	EstimatedDays int    `json:"estimated_days" gorm:"default:0"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	IsDeleted     bool   `gorm:"default:false"`
}
