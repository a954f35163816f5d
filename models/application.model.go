package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApplicationPending   = "PENDING"
	ApplicationReviewing = "REVIEWING"
	ApplicationAccepted  = "ACCEPTED"
	ApplicationRejected  = "REJECTED"
)

// Application represents a candidate's application to one internship
type Application struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	InternshipID  uint       `json:"internship_id" gorm:"index;not null"`
	Status        string     `json:"status" gorm:"default:'PENDING'"` // PENDING, REVIEWING, ACCEPTED, REJECTED
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Education     string     `json:"education" gorm:"type:text"`
	Experience    string     `json:"experience" gorm:"type:text"`
	WhyInterested string     `json:"why_interested" gorm:"type:text"`
	Availability  string     `json:"availability"`
	ResumeURL     string     `json:"resume_url"`
	CoverLetter   string     `json:"cover_letter" gorm:"type:text"`
	LinkedinURL   string     `json:"linkedin_url"`
	GithubURL     string     `json:"github_url"`
	AppliedAt     time.Time  `json:"applied_at"`
	User          User       `gorm:"foreignKey:UserID"`
	Internship    Internship `gorm:"foreignKey:InternshipID"`
	IsDeleted     bool       `gorm:"default:false"`
}
