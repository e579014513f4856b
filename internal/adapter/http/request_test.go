package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
)

func TestSearchTransportRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   SearchTransportRequest
		want SearchTransportRequest
	}{
		{
			name: "already normalized",
			in:   SearchTransportRequest{From: "BKK", To: "CNX", Date: "2026-01-29"},
			want: SearchTransportRequest{From: "BKK", To: "CNX", Date: "2026-01-29"},
		},
		{
			name: "lowercase with padding",
			in:   SearchTransportRequest{From: " bkk", To: "cnx\t", Date: " 2026-01-29 "},
			want: SearchTransportRequest{From: "BKK", To: "CNX", Date: "2026-01-29"},
		},
		{
			name: "malformed values are kept",
			in:   SearchTransportRequest{From: "bangkok", To: "", Date: "tomorrow"},
			want: SearchTransportRequest{From: "BANGKOK", To: "", Date: "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize()
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestToChatRequest(t *testing.T) {
	req := ToChatRequest(&ChatRequestDTO{
		Messages: []ChatMessageDTO{{Role: "user", Content: "hi"}},
		Model:    "  gpt-4o-mini ",
	})

	assert.Equal(t, domain.ChatRequest{
		Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}},
		Model:    "gpt-4o-mini",
	}, req)
}

func TestToChatResponse(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	resp := ToChatResponse(&domain.ChatReply{
		Reply:     "ok",
		Model:     "m",
		Cached:    true,
		CreatedAt: time.Date(2026, 1, 29, 15, 0, 0, 0, bangkok),
	})

	assert.Equal(t, "2026-01-29T08:00:00Z", resp.CreatedAt)
	assert.True(t, resp.Cached)
}

func TestToPopularRoutesResponse_NilRoutes(t *testing.T) {
	resp := ToPopularRoutesResponse("XYZ", nil)

	assert.NotNil(t, resp.Routes)
	assert.Empty(t, resp.Routes)
}
