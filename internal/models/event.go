package models

import (
	"time"
)

// Event represents an editorial calendar event
type Event struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	TitleFr       *string    `json:"title_fr,omitempty" db:"title_fr"`
	Description   *string    `json:"description,omitempty" db:"description"`
	DescriptionFr *string    `json:"description_fr,omitempty" db:"description_fr"`
	Location      *string    `json:"location,omitempty" db:"location"`
	StartsAt      time.Time  `json:"starts_at" db:"starts_at"`
	EndsAt        *time.Time `json:"ends_at,omitempty" db:"ends_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NewsletterSubscriber represents a newsletter signup
type NewsletterSubscriber struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Language  string    `json:"language" db:"language"` // "en" or "fr"
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ValidLanguages defines allowed subscriber language preferences
var ValidLanguages = map[string]bool{
	"en": true,
	"fr": true,
}
