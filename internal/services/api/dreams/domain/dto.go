package domain

import (
	"dreammap/internal/core/dream"
	rldomain "dreammap/internal/services/api/ratelimit/domain"
)

// Limits applied to listing
const (
	DefaultListLimit = 500
	MaxListLimit     = 500
)

// DefaultMaxRunes bounds a dream after sanitizing
const DefaultMaxRunes = 2000

// SubmitInput is the POST /dreams body. Lat and Lng come together or not at
// all; without them the origin is looked up or randomized.
type SubmitInput struct {
	Text string   `json:"text" validate:"required,notblank,max=8000"`
	Lat  *float64 `json:"lat,omitempty" validate:"required_with=Lng,omitempty,min=-90,max=90"`
	Lng  *float64 `json:"lng,omitempty" validate:"required_with=Lat,omitempty,min=-180,max=180"`
}

// Submission is the created dream plus the caller's refreshed quota
type Submission struct {
	Dream     dream.Record    `json:"dream"`
	RateLimit rldomain.Status `json:"rate_limit"`
}

// ListInput filters a listing; a zero Category lists all
type ListInput struct {
	Category dream.Category
	Limit    int
}

// DreamList is the GET /dreams body
type DreamList struct {
	Dreams []dream.Record `json:"dreams"`
	Count  int            `json:"count"`
}
