package models

import (
	"time"
)

// Author represents an article author
type Author struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	BioFr     *string   `json:"bio_fr,omitempty" db:"bio_fr"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Category represents an editorial category
type Category struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	NameFr        *string   `json:"name_fr,omitempty" db:"name_fr"`
	Slug          string    `json:"slug" db:"slug"`
	Description   *string   `json:"description,omitempty" db:"description"`
	DescriptionFr *string   `json:"description_fr,omitempty" db:"description_fr"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
