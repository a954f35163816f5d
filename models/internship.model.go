package models

import "gorm.io/gorm"

// Internship represents an open or closed internship posting
type Internship struct {
	gorm.Model
	Title          string `json:"title"`
	Department     string `json:"department"`
	Description    string `json:"description" gorm:"type:text"`
	Requirements   string `json:"requirements" gorm:"type:text"`
	Location       string `json:"location"`
	Duration       string `json:"duration"` // e.g. "3 months"
	IsOpen         bool   `json:"is_open" gorm:"default:true"`
	LearningPathID *uint  `json:"learning_path_id" gorm:"index"` // Curriculum assigned to accepted applicants
	IsDeleted      bool   `gorm:"default:false"`
}
