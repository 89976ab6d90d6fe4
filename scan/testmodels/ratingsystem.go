// Package testmodels holds entity fixtures for scanner tests.
package testmodels

import "github.com/go-openapi/strfmt"

// RatingSystem is stored as a top-level document.
//
//mongo:document
type RatingSystem struct {

	// Timestamp when the rating system was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// A description of the rating system.
	// Required: true
	Description *string `json:"Description"`

	// Unique identifier for the rating system.
	// Required: true
	ID *string `json:"Id"`

	// Name of the rating system.
	// Required: true
	Name *string `json:"Name"`

	// site Url
	SiteURL string `json:"SiteUrl,omitempty"`

	// Timestamp when the rating system was last updated.
	// Required: true
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}

//mapping:persistent
type Rating struct {
	Player string  `json:"Player"`
	Value  float64 `json:"Value"`
}

type (
	//mongo:document
	Club struct {
		ID   string `json:"Id"`
		Name string `json:"Name"`
	}

	// Venue is not marked and must not be picked up.
	Venue struct {
		Address string `json:"Address"`
	}
)

// Standing is a plain value type.
type Standing struct {
	Rank int `json:"Rank"`
}
