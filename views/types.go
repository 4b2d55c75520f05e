package views

import "time"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Portfolio")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Article is one blog article as stored in SQLite and rendered on the blog page.
// ReadTime is derived from Content on every write and never set directly.
type Article struct {
	ID           int64
	Slug         string
	CardPosition int
	Title        string
	Meta         string
	Summary      string
	Content      string
	ReadTime     string
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Booking status values. Transitions are pending -> confirmed or
// pending -> cancelled; nothing enforces this beyond the admin handlers.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is one tutoring booking request.
type Booking struct {
	ID             int64
	Name           string
	Level          string
	ExamBoard      string
	Email          string
	PreferredTimes string
	Message        string
	Status         string
	CreatedAt      time.Time
}

// Flash is a one-shot status message shown after a redirect.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// ContactFormData carries submitted contact-form values and field errors
// back into the template when validation fails.
type ContactFormData struct {
	Name    string
	Company string
	Email   string
	Reason  string
	Message string
	Errors  map[string]string
}

// BookingFormData carries submitted booking-form values and field errors
// back into the template when validation fails.
type BookingFormData struct {
	Name           string
	Level          string
	ExamBoard      string
	Email          string
	PreferredTimes string
	Message        string
	Errors         map[string]string
}
