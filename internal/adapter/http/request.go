// Package http provides the HTTP handler layer for the travel affiliate API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import "strings"

// SearchTransportRequest is the transport search input, read from the query
// string on GET and from the JSON body on POST.
type SearchTransportRequest struct {
	// From is the origin location code (e.g., "BKK")
	From string `json:"from" query:"from" example:"BKK"`

	// To is the destination location code (e.g., "CNX")
	To string `json:"to" query:"to" example:"CNX"`

	// Date is the travel date, echoed back unchanged (YYYY-MM-DD)
	Date string `json:"date" query:"date" example:"2026-01-29"`
}

// Normalize trims whitespace and upper-cases the location codes.
// Unknown or malformed codes are left for the catalog to miss.
func (r *SearchTransportRequest) Normalize() {
	r.From = normalizeCode(r.From)
	r.To = normalizeCode(r.To)
	r.Date = strings.TrimSpace(r.Date)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ChatMessageDTO is one conversation turn in a chat request.
type ChatMessageDTO struct {
	// Role is one of system, user, assistant
	Role string `json:"role" example:"user"`

	// Content is the message text
	Content string `json:"content" example:"How do I get from Bangkok to Chiang Mai?"`
}

// ChatRequestDTO is the request body of the chat endpoint.
type ChatRequestDTO struct {
	// Messages is the conversation so far, oldest first
	Messages []ChatMessageDTO `json:"messages"`

	// Model optionally names a preferred model from the configured chain
	Model string `json:"model,omitempty" example:"gpt-4o-mini"`
}
