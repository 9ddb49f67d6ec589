package domain

import "time"

// Location is a lookup entity referenced by observations.
type Location struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DemoRequest is a marketing-site lead captured before signup.
type DemoRequest struct {
	ID             string
	FullName       string
	Email          string
	WhatsappNumber string
	Company        string
	JobTitle       string
	Message        string
	CreatedAt      time.Time
}
