package learning

import (
	"time"

	"gorm.io/gorm"
)

// InternLearningProgress tracks one intern's aggregate progress in one learning path.
// ProgressPercent is cached and recomputed whenever a TaskProgress changes.
type InternLearningProgress struct {
	gorm.Model
	UserID          uint `json:"user_id" gorm:"index;not null"`
	LearningPathID  uint `json:"learning_path_id" gorm:"index;not null"`
	ProgressPercent int  `json:"progress_percent" gorm:"default:0"` // 0-100
	IsDeleted       bool `gorm:"default:false"`
}

// TaskProgress tracks one intern's completion of one task, created lazily on first interaction
type TaskProgress struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"index;not null"`
	TaskID         uint       `json:"task_id" gorm:"index;not null"`
	IsCompleted    bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt    *time.Time `json:"completed_at"`
	SubmissionData string     `json:"submission_data" gorm:"type:text"`
	IsDeleted      bool       `gorm:"default:false"`
}
