package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/middleware"
	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/retry"
	"github.com/siam-trails/travel-affiliate-service/internal/usecase"
	"github.com/siam-trails/travel-affiliate-service/test/mock"
	"github.com/siam-trails/travel-affiliate-service/test/testutil"
)

// TestHandler_SearchGet_BangkokToChiangMai tests a search through the full HTTP stack.
func TestHandler_SearchGet_BangkokToChiangMai(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.SearchGet("BKK", "CNX", TestDate)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Headers.Get(middleware.RequestIDHeader))

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)
	assert.Equal(t, "BKK", result.From)
	assert.Equal(t, "CNX", result.To)
	assert.Equal(t, TestDate, result.Date)
	assert.Equal(t, "https://www.12go.asia/en/travel/bus/bkk-cnx", result.AffiliateLink)

	require.Len(t, result.Schedules, 3)
	assert.Equal(t, "Nok Air", result.Schedules[0].Company)
	assert.Equal(t, domain.ModeBus, result.Schedules[0].Mode)
	assert.Equal(t, domain.ModeTrain, result.Schedules[1].Mode)
}

// TestHandler_SearchPost_MatchesGet tests that both search verbs return the same document.
func TestHandler_SearchPost_MatchesGet(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	get := ts.SearchGet("BKK", "PHK", TestDate)
	post := ts.SearchPost(SearchRequestBody{From: "BKK", To: "PHK", Date: TestDate})

	assert.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, http.StatusOK, post.Code)
	assert.JSONEq(t, string(get.Body), string(post.Body))
}

// TestHandler_ResponseBodyStructure tests the wire names of a search result.
func TestHandler_ResponseBodyStructure(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.SearchGet("CNX", "CRI", TestDate)
	require.Equal(t, http.StatusOK, resp.Code)

	body := string(resp.Body)
	for _, field := range []string{
		`"from":"CNX"`, `"to":"CRI"`, `"date":"2026-01-29"`,
		`"affiliateLink":`, `"schedules":[`,
		`"id":"cnx-cri-001"`, `"mode":"bus"`, `"company":"Green Bus"`,
		`"departureTime":"08:00"`, `"arrivalTime":"11:00"`, `"duration":"3h"`,
		`"price":250`, `"currency":"THB"`, `"availableSeats":20`, `"rating":4.5`,
		`"bookingUrl":"https://www.12go.asia/en/travel/chiang-mai/chiang-rai"`,
	} {
		assert.Contains(t, body, field)
	}
}

// TestHandler_SearchUnknownRoute tests that an unknown route is not an error.
func TestHandler_SearchUnknownRoute(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.SearchGet("PAI", "CRI", TestDate)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"schedules":[]`)

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)
	assert.Empty(t, result.Schedules)
	assert.Equal(t, "https://www.12go.asia/en/travel/bus/pai-cri", result.AffiliateLink)
}

// TestHandler_SearchNormalizesCodes tests that lowercase and padded codes still match.
func TestHandler_SearchNormalizesCodes(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.SearchGet(" bkk", "cnx ", TestDate)

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)
	assert.Equal(t, "BKK", result.From)
	assert.Equal(t, "CNX", result.To)
	assert.Len(t, result.Schedules, 3)
}

// TestHandler_SearchDateEchoed tests that the date is echoed without validation.
func TestHandler_SearchDateEchoed(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	tests := []struct {
		name string
		date string
	}{
		{name: "valid date", date: TestDate},
		{name: "past date", date: "1999-12-31"},
		{name: "garbage", date: "next tuesday"},
		{name: "empty", date: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.SearchGet("BKK", "CNX", tt.date)

			result, err := resp.ParseSearchResult()
			require.NoError(t, err)
			assert.Equal(t, tt.date, result.Date)
			assert.Len(t, result.Schedules, 3)
		})
	}

	parsed := testutil.MustParseDate(t, TestDate)
	assert.Equal(t, time.Thursday, parsed.Weekday())
}

// TestHandler_SearchInvalidJSON tests a malformed POST body.
func TestHandler_SearchInvalidJSON(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/transport/search",
		RawBody: []byte(`{"from": "BKK",`),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", errResp["code"])
}

// TestHandler_AffiliateMarker tests that the configured marker tags the search link.
func TestHandler_AffiliateMarker(t *testing.T) {
	ts := NewTestServer(ServerOptions{
		Transport: &usecase.TransportConfig{PartnerDomain: "www.12go.asia", Marker: "siamtrails"},
	})

	result, err := ts.SearchGet("BKK", "CNX", TestDate).ParseSearchResult()
	require.NoError(t, err)
	assert.Equal(t, "https://www.12go.asia/en/travel/bus/bkk-cnx?z=siamtrails", result.AffiliateLink)
}

// TestHandler_FileCatalog tests serving a catalog loaded from a JSON file.
func TestHandler_FileCatalog(t *testing.T) {
	ts := NewTestServer(ServerOptions{
		Catalog: testutil.LoadCatalog(t, "catalog_islands.json", "www.12go.asia"),
	})

	result, err := ts.SearchGet("URT", "USM", TestDate).ParseSearchResult()
	require.NoError(t, err)
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, "urt-usm-001", result.Schedules[0].ID)
	assert.Equal(t, domain.ModeMinibus, result.Schedules[1].Mode)

	// The built-in routes are not merged in.
	result, err = ts.SearchGet("BKK", "CNX", TestDate).ParseSearchResult()
	require.NoError(t, err)
	assert.Empty(t, result.Schedules)

	popular, err := ts.PopularRequest("USM").ParsePopular()
	require.NoError(t, err)
	require.Len(t, popular.Routes, 1)
	assert.Equal(t, "Surat Thani → Koh Samui", popular.Routes[0].Label)
}

// TestHandler_PopularRoutes tests curated routes for a destination page.
func TestHandler_PopularRoutes(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	tests := []struct {
		name      string
		code      string
		wantDest  string
		wantCount int
	}{
		{name: "chiang mai", code: "CNX", wantDest: "CNX", wantCount: 3},
		{name: "lowercase code", code: "phk", wantDest: "PHK", wantCount: 2},
		{name: "unknown code", code: "XYZ", wantDest: "XYZ", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.PopularRequest(tt.code)
			require.Equal(t, http.StatusOK, resp.Code)

			popular, err := resp.ParsePopular()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDest, popular.Destination)
			assert.Len(t, popular.Routes, tt.wantCount)
			assert.NotNil(t, popular.Routes)
		})
	}
}

// TestHandler_Routes tests the catalog route listing.
func TestHandler_Routes(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.RoutesRequest()

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.HasPrefix(string(resp.Body), `[{"from":"BKK","to":"CNX"}`))
	assert.Contains(t, string(resp.Body), `{"from":"CNX","to":"PAI"}`)
}

// TestHandler_HealthCheck tests the health endpoint.
func TestHandler_HealthCheck(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.HealthRequest()

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}

// TestHandler_UnknownPath tests that unknown API paths get the JSON error envelope.
func TestHandler_UnknownPath(t *testing.T) {
	ts := NewTestServer(ServerOptions{})

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/transport/schedules"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "not_found", errResp["code"])
}

// TestHandler_CORSPreflight tests that the single-page app can call the API cross-origin.
func TestHandler_CORSPreflight(t *testing.T) {
	ts := NewTestServer(ServerOptions{AllowedOrigins: []string{"https://siamtrails.example"}})

	resp := ts.Do(Request{
		Method: http.MethodOptions,
		Path:   "/api/v1/chat",
		Headers: map[string]string{
			"Origin":                         "https://siamtrails.example",
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "content-type",
		},
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "https://siamtrails.example", resp.Headers.Get("Access-Control-Allow-Origin"))
}

// TestHandler_Chat_Success tests a chat round trip with the fake upstream.
func TestHandler_Chat_Success(t *testing.T) {
	completer := mock.NewCompleter("Take the overnight train from Krung Thep Aphiwat.")
	ts := NewTestServer(ServerOptions{Completer: completer})

	resp := ts.ChatRequest(Ask("How do I get to Chiang Mai?"))

	assert.Equal(t, http.StatusOK, resp.Code)
	chat, err := resp.ParseChat()
	require.NoError(t, err)
	assert.Equal(t, "Take the overnight train from Krung Thep Aphiwat.", chat.Reply)
	assert.Equal(t, "gpt-4o-mini", chat.Model)
	assert.False(t, chat.Cached)
	assert.True(t, testutil.MustParseTime(t, TestNow).Equal(testutil.MustParseTime(t, chat.CreatedAt)))
	assert.Equal(t, []string{"gpt-4o-mini"}, completer.Calls())
}

// TestHandler_Chat_CachedReply tests that an identical conversation is served from cache.
func TestHandler_Chat_CachedReply(t *testing.T) {
	completer := mock.NewCompleter("About 12 hours by bus.")
	ts := NewTestServer(ServerOptions{Completer: completer})

	first, err := ts.ChatRequest(Ask("Bangkok to Phuket?")).ParseChat()
	require.NoError(t, err)
	second, err := ts.ChatRequest(Ask("Bangkok to Phuket?")).ParseChat()
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Reply, second.Reply)
	assert.Equal(t, 1, completer.CallCount())
}

// TestHandler_Chat_Fallback tests that a failing model falls back to the next one.
func TestHandler_Chat_Fallback(t *testing.T) {
	completer := mock.NewCompleter("Try the minibus to Pai.").
		WithModelError("gpt-4o-mini", domain.NewModelUnavailableError("gpt-4o-mini", http.StatusNotFound))
	ts := NewTestServer(ServerOptions{Completer: completer})

	chat, err := ts.ChatRequest(Ask("Chiang Mai to Pai?")).ParseChat()
	require.NoError(t, err)

	assert.Equal(t, "gpt-3.5-turbo", chat.Model)
	assert.Equal(t, []string{"gpt-4o-mini", "gpt-3.5-turbo"}, completer.Calls())
}

// TestHandler_Chat_Errors tests how chat failures map to HTTP responses.
func TestHandler_Chat_Errors(t *testing.T) {
	tests := []struct {
		name      string
		completer *mock.Completer
		body      interface{}
		wantCode  int
		wantError string
	}{
		{
			name:      "assistant disabled",
			completer: nil,
			body:      Ask("Hello"),
			wantCode:  http.StatusServiceUnavailable,
			wantError: "service_unavailable",
		},
		{
			name:      "all models failed",
			completer: mock.NewCompleter("").WithError(errors.New("upstream exploded")),
			body:      Ask("Hello"),
			wantCode:  http.StatusBadGateway,
			wantError: "upstream_error",
		},
		{
			name:      "every model too slow",
			completer: mock.NewCompleter("late").WithDelay(2 * time.Second),
			body:      Ask("Hello"),
			wantCode:  http.StatusGatewayTimeout,
			wantError: "timeout",
		},
		{
			name:      "empty conversation",
			completer: mock.NewCompleter("unused"),
			body:      ChatRequestBody{},
			wantCode:  http.StatusBadRequest,
			wantError: "validation_error",
		},
		{
			name:      "unknown role",
			completer: mock.NewCompleter("unused"),
			body: ChatRequestBody{Messages: []domain.ChatMessage{
				{Role: "tool", Content: "hi"},
			}},
			wantCode:  http.StatusBadRequest,
			wantError: "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ServerOptions{}
			if tt.completer != nil {
				opts.Completer = tt.completer
			}
			ts := NewTestServer(opts)

			resp := ts.ChatRequest(tt.body)

			assert.Equal(t, tt.wantCode, resp.Code)
			errResp, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, errResp["code"])

			if tt.completer != nil && tt.wantCode == http.StatusBadRequest {
				assert.Zero(t, tt.completer.CallCount())
			}
		})
	}
}

// TestHandler_Chat_HangingUpstreamAnswersBeforeWriteTimeout tests that a chain of
// hanging models still produces a 504 body before the server write deadline.
func TestHandler_Chat_HangingUpstreamAnswersBeforeWriteTimeout(t *testing.T) {
	completer := mock.NewCompleter("never").WithDelay(time.Minute)
	ts := NewTestServer(ServerOptions{
		Completer: completer,
		Chat: &usecase.ChatConfig{
			Models:         []string{"gpt-4o-mini", "gpt-3.5-turbo"},
			AttemptTimeout: 100 * time.Millisecond,
			RequestTimeout: 200 * time.Millisecond,
			Retry:          retry.UpstreamConfig.WithMaxAttempts(2).WithInitialDelay(5 * time.Millisecond),
		},
	})

	server := httptest.NewUnstartedServer(ts.Echo)
	server.Config.WriteTimeout = 300 * time.Millisecond
	server.Start()
	defer server.Close()

	body, err := json.Marshal(Ask("Is the night train running?"))
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/v1/chat", echo.MIMEApplicationJSON, bytes.NewReader(body))
	require.NoError(t, err, "the server must answer before its write timeout")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	var errResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "timeout", errResp["code"])
	assert.LessOrEqual(t, completer.CallCount(), 2)
}
