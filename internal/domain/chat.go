package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=domain

// Chat message roles accepted from clients.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxChatMessages is the maximum conversation length accepted per request.
const MaxChatMessages = 50

var validRoles = map[string]bool{
	RoleSystem:    true,
	RoleUser:      true,
	RoleAssistant: true,
}

// ChatMessage is a single turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a conversation forwarded to the chat upstream.
type ChatRequest struct {
	// Messages is the conversation so far, oldest first
	Messages []ChatMessage `json:"messages"`

	// Model optionally pins the preferred model; the fallback chain still applies
	Model string `json:"model,omitempty"`
}

// Validate checks the conversation shape and reports every field failure at once.
// Returns a *ValidationErrors, which wraps ErrInvalidRequest, if validation fails.
func (r *ChatRequest) Validate() error {
	errs := &ValidationErrors{}

	switch {
	case len(r.Messages) == 0:
		errs.Add("messages", "at least one message is required")
	case len(r.Messages) > MaxChatMessages:
		errs.Add("messages", fmt.Sprintf("cannot exceed %d messages", MaxChatMessages))
	}

	for i, m := range r.Messages {
		if !validRoles[m.Role] {
			errs.Add(fmt.Sprintf("messages[%d].role", i), "role must be one of: system, user, assistant")
		}
		if strings.TrimSpace(m.Content) == "" {
			errs.Add(fmt.Sprintf("messages[%d].content", i), "content is required")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ChatReply is the answer produced by the chat proxy.
type ChatReply struct {
	// Reply is the assistant text
	Reply string `json:"reply"`

	// Model is the model that produced the reply
	Model string `json:"model"`

	// Cached is true when the reply was served from the reply cache
	Cached bool `json:"cached"`

	// CreatedAt is when the reply was first produced
	CreatedAt time.Time `json:"createdAt"`
}

// ChatCompleter sends a conversation to one model of an LLM upstream.
// Implementations return *UpstreamError values so callers can decide whether to retry.
type ChatCompleter interface {
	Complete(ctx context.Context, model string, messages []ChatMessage) (string, error)
}
