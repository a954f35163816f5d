package utils

import (
	"log"
	"stagi/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// SyncAcceptedApplication pushes an accepted application to the external HR
// system. A no-op when HR_SYNC_URL is not configured.
func SyncAcceptedApplication(applicationID, userID uint, fullName, email, internshipTitle string) {
	if config.AppConfig.HRSyncURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", config.AppConfig.HRSyncAPIKey).
		SetBody(map[string]interface{}{
			"application_id": applicationID,
			"user_id":        userID,
			"full_name":      fullName,
			"email":          email,
			"internship":     internshipTitle,
			"accepted_at":    time.Now().Format(time.RFC3339),
		}).
		Post(config.AppConfig.HRSyncURL)

	if err != nil {
		log.Printf("Error syncing accepted application to HR system: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("HR sync failed with status %d: %s", resp.StatusCode(), resp.String())
		return
	}

	log.Printf("Accepted application %d synced to HR system", applicationID)
}
