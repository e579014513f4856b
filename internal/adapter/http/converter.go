package http

import (
	"strings"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

// ToSearchRequest converts a normalized SearchTransportRequest to domain.SearchRequest.
func ToSearchRequest(req *SearchTransportRequest) domain.SearchRequest {
	return domain.SearchRequest{
		From: req.From,
		To:   req.To,
		Date: req.Date,
	}
}

// ToChatRequest converts a ChatRequestDTO to domain.ChatRequest.
func ToChatRequest(req *ChatRequestDTO) domain.ChatRequest {
	messages := make([]domain.ChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = domain.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	return domain.ChatRequest{
		Messages: messages,
		Model:    strings.TrimSpace(req.Model),
	}
}

// ToPopularRoutesResponse wraps a destination's popular routes.
func ToPopularRoutesResponse(destination string, routes []domain.PopularRoute) *PopularRoutesResponse {
	if routes == nil {
		routes = []domain.PopularRoute{}
	}
	return &PopularRoutesResponse{
		Destination: destination,
		Routes:      routes,
	}
}

// ToChatResponse converts a domain.ChatReply to its wire form.
func ToChatResponse(reply *domain.ChatReply) *ChatResponse {
	return &ChatResponse{
		Reply:     reply.Reply,
		Model:     reply.Model,
		Cached:    reply.Cached,
		CreatedAt: reply.CreatedAt.UTC().Format(timeLayout),
	}
}
