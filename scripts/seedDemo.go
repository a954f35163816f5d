package main

import (
	"log"
	"stagi/config"
	"stagi/database"
	"stagi/models"
	"stagi/models/learning"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account, demo internships and the HTML Fundamentals
// learning path for local development.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Admin account
	var admin models.User
	if err := db.Where("email = ?", "admin@stagi.local").First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin = models.User{
			Name:     "Stagi Admin",
			Email:    "admin@stagi.local",
			Role:     models.RoleAdmin,
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		for _, p := range []string{"login", "view-internships", "manage-internships", "review-applications", "manage-learning"} {
			db.Create(&models.Permission{UserID: admin.ID, Role: admin.Role, Permission: p})
		}
		log.Println("Created admin user admin@stagi.local")
	}

	// HTML Fundamentals learning path
	var path learning.LearningPath
	if err := db.Where("title = ?", "HTML Fundamentals").First(&path).Error; err != nil {
		path = learning.LearningPath{
			Title:         "HTML Fundamentals",
			Description:   "Learn the building blocks of the web: structure, semantics and forms.",
			EstimatedDays: 14,
			IsActive:      true,
		}
		if err := db.Create(&path).Error; err != nil {
			log.Fatalf("Failed to create learning path: %v", err)
		}

		moduleA := learning.Module{LearningPathID: path.ID, Title: "Document Structure", Description: "Elements, nesting and semantics.", OrderIndex: 1, EstimatedHours: 6}
		moduleB := learning.Module{LearningPathID: path.ID, Title: "Forms and Input", Description: "Collecting user input the right way.", OrderIndex: 2, EstimatedHours: 4}
		db.Create(&moduleA)
		db.Create(&moduleB)

		tasks := []learning.Task{
			{ModuleID: moduleA.ID, Title: "Your first page", Description: "Write a valid HTML5 document.", OrderIndex: 1, IsRequired: true, EstimatedMinutes: 45},
			{ModuleID: moduleA.ID, Title: "Semantic layout", Description: "Rebuild a page using semantic elements.", OrderIndex: 2, IsRequired: true, EstimatedMinutes: 60},
			{ModuleID: moduleB.ID, Title: "Build a signup form", Description: "A form with labels, validation attributes and a submit handler.", OrderIndex: 1, IsRequired: true, EstimatedMinutes: 90},
		}
		for i := range tasks {
			db.Create(&tasks[i])
			db.Create(&learning.TaskContent{
				TaskID:      tasks[i].ID,
				ContentType: learning.ContentText,
				TextContent: tasks[i].Description,
				OrderIndex:  1,
			})
		}

		db.Create(&learning.SubmissionRequirement{
			TaskID:         tasks[2].ID,
			SubmissionType: learning.SubmissionGithubRepo,
			Instructions:   "Push your form to a public repository and paste the link.",
			IsRequired:     true,
		})

		log.Println("Created HTML Fundamentals learning path")
	}

	// Demo internships
	var count int64
	db.Model(&models.Internship{}).Count(&count)
	if count == 0 {
		internships := []models.Internship{
			{Title: "Frontend Developer Intern", Department: "Engineering", Description: "Work on our customer-facing web apps.", Location: "Remote", Duration: "3 months", IsOpen: true, LearningPathID: &path.ID},
			{Title: "QA Intern", Department: "Engineering", Description: "Help us ship with confidence.", Location: "Berlin", Duration: "6 months", IsOpen: true},
			{Title: "Marketing Intern", Department: "Marketing", Description: "Content and campaign support.", Location: "Berlin", Duration: "3 months", IsOpen: true},
		}
		for i := range internships {
			db.Create(&internships[i])
		}
		// Closed posting for demoing the closed-application flow
		db.Model(&internships[2]).Update("is_open", false)
		log.Println("Created demo internships")
	}

	log.Println("Seeding completed.")
}
