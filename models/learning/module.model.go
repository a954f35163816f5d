package learning

import "gorm.io/gorm"

// Module represents an ordered section within a learning path
type Module struct {
	gorm.Model
	LearningPathID uint   `json:"learning_path_id" gorm:"index;not null"`
	Title          string `json:"title"`
	Description    string `json:"description" gorm:"type:text"`
	OrderIndex     int    `json:"order_index" gorm:"default:0"` // Module order in path, unique per path
	EstimatedHours int    `json:"estimated_hours" gorm:"default:0"`
	IsDeleted      bool   `gorm:"default:false"`
}
