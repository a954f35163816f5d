package learning

import "gorm.io/gorm"

const (
	SubmissionNone        = "NONE"
	SubmissionTextInput   = "TEXT_INPUT"
	SubmissionGithubRepo  = "GITHUB_REPO"
	SubmissionURLLink     = "URL_LINK"
	SubmissionFileUpload  = "FILE_UPLOAD"
	SubmissionImageUpload = "IMAGE_UPLOAD"
	SubmissionCodeSnippet = "CODE_SNIPPET"
)

// SubmissionRequirement declares what artifact a task expects from the intern.
// A NONE type means no submission is expected.
type SubmissionRequirement struct {
	gorm.Model
	TaskID         uint   `json:"task_id" gorm:"uniqueIndex;not null"`
	SubmissionType string `json:"submission_type" gorm:"default:'NONE'"` // NONE, TEXT_INPUT, GITHUB_REPO, URL_LINK, FILE_UPLOAD, IMAGE_UPLOAD, CODE_SNIPPET
	Instructions   string `json:"instructions" gorm:"type:text"`
	IsRequired     bool   `json:"is_required" gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}
