package learning

import "gorm.io/gorm"

// Task represents one unit of learning content within a module
type Task struct {
	gorm.Model
	ModuleID         uint   `json:"module_id" gorm:"index;not null"`
	Title            string `json:"title"`
	Description      string `json:"description" gorm:"type:text"`
	OrderIndex       int    `json:"order_index" gorm:"default:0"` // Order within module
	IsRequired       bool   `json:"is_required" gorm:"default:true"`
	EstimatedMinutes int    `json:"estimated_minutes" gorm:"default:0"`
	IsDeleted        bool   `gorm:"default:false"`
}
