package dto

import "time"

// WelcomeResponse is the personalized welcome page payload.
type WelcomeResponse struct {
	User                  UserResponse `json:"user"`
	TotalUsers            int64        `json:"total_users"`
	DaysSinceRegistration int          `json:"days_since_registration"`
	LoginTime             time.Time    `json:"login_time"`
	CurrentTime           string       `json:"current_time"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Sessions  string `json:"sessions"`
	Timestamp string `json:"timestamp"`
}
