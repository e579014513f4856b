package http

import (
	"time"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

const timeLayout = time.RFC3339

// PopularRoutesResponse lists the curated routes shown for a destination.
type PopularRoutesResponse struct {
	Destination string                `json:"destination" example:"CNX"`
	Routes      []domain.PopularRoute `json:"routes"`
}

// ChatResponse is the response body of the chat endpoint.
type ChatResponse struct {
	// Reply is the assistant text
	Reply string `json:"reply" example:"The overnight train takes about 11 hours."`

	// Model is the model that answered
	Model string `json:"model" example:"gpt-4o-mini"`

	// Cached is true when the reply was reused from an identical earlier request
	Cached bool `json:"cached" example:"false"`

	// CreatedAt is when the reply was produced (RFC3339, UTC)
	CreatedAt string `json:"createdAt" example:"2026-01-29T08:00:00Z"`
}
