package learning

import "gorm.io/gorm"

const (
	ContentText  = "TEXT"
	ContentVideo = "VIDEO"
	ContentPDF   = "PDF"
	ContentImage = "IMAGE"
	ContentLink  = "LINK"
	ContentCode  = "CODE"
)

// TaskContent represents one content block within a task.
// Only the payload fields matching ContentType are meaningful.
type TaskContent struct {
	gorm.Model
	TaskID      uint   `json:"task_id" gorm:"index;not null"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO, PDF, IMAGE, LINK, CODE
	TextContent string `json:"text_content" gorm:"type:text"`      // For TEXT and CODE types
	VideoURL    string `json:"video_url"`                          // For VIDEO type
	FileURL     string `json:"file_url"`                           // For PDF and IMAGE types
	FileName    string `json:"file_name"`
	LinkURL     string `json:"link_url"` // For LINK type
	LinkTitle   string `json:"link_title"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Order within task
	IsDeleted   bool   `gorm:"default:false"`
}
