// Package integration provides helpers and integration tests for the travel affiliate service.
// Integration tests verify that components work together correctly, including
// the route catalog, use cases, HTTP handlers, middleware and a fake chat upstream.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/siam-trails/travel-affiliate-service/internal/adapter/http"
	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/middleware"
	"github.com/siam-trails/travel-affiliate-service/internal/catalog"
	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/retry"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/timeutil"
	"github.com/siam-trails/travel-affiliate-service/internal/usecase"
)

// TestDate is the travel date used across integration tests.
const TestDate = "2026-01-29"

// TestNow is the fixed instant seen by the chat use case (already the 29th in Bangkok).
const TestNow = "2026-01-28T20:00:00Z"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo   *echo.Echo
	Search usecase.TransportSearchUseCase
	Chat   usecase.ChatUseCase
}

// ServerOptions configures the wiring of a TestServer.
type ServerOptions struct {
	// Catalog defaults to the built-in catalog
	Catalog *catalog.RouteCatalog

	// Transport defaults to the default partner domain without a marker
	Transport *usecase.TransportConfig

	// Completer is the chat upstream; nil leaves the assistant disabled
	Completer domain.ChatCompleter

	// Chat defaults to FastChatConfig
	Chat *usecase.ChatConfig

	// AllowedOrigins enables CORS when non-nil
	AllowedOrigins []string
}

// NewTestServer wires the real catalog, use cases, handlers and middleware.
func NewTestServer(opts ServerOptions) *TestServer {
	routes := opts.Catalog
	if routes == nil {
		routes = catalog.Default()
	}

	chatConfig := opts.Chat
	if chatConfig == nil {
		chatConfig = FastChatConfig()
	}

	searchUC := usecase.NewTransportSearchService(routes, opts.Transport)
	chatUC := usecase.NewChatService(opts.Completer, chatConfig,
		usecase.WithClock(timeutil.NewMockClockFromString(TestNow)),
		usecase.WithLogger(logger.Nop()),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpAdapter.NewHTTPErrorHandler(e)

	middleware.Setup(e, logger.Nop(), middleware.Config{
		AllowedOrigins: opts.AllowedOrigins,
		SkipLogPaths:   []string{"/health"},
	})

	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewTransportHandler(searchUC),
		httpAdapter.NewChatHandler(chatUC),
	)

	return &TestServer{
		Echo:   e,
		Search: searchUC,
		Chat:   chatUC,
	}
}

// FastChatConfig returns a chat configuration with short timeouts and
// no retries so failure paths finish quickly.
func FastChatConfig() *usecase.ChatConfig {
	return &usecase.ChatConfig{
		Models:         []string{"gpt-4o-mini", "gpt-3.5-turbo"},
		AttemptTimeout: 200 * time.Millisecond,
		RequestTimeout: time.Second,
		Retry:          retry.UpstreamConfig.WithMaxAttempts(1),
		CacheTTL:       time.Minute,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     []byte
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	body := req.RawBody
	if req.Body != nil {
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchGet performs GET /api/v1/transport/search with query parameters.
func (ts *TestServer) SearchGet(from, to, date string) Response {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("date", date)
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/transport/search?" + q.Encode(),
	})
}

// SearchPost performs POST /api/v1/transport/search with a JSON body.
func (ts *TestServer) SearchPost(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/transport/search",
		Body:   body,
	})
}

// PopularRequest performs GET /api/v1/transport/popular/:code.
func (ts *TestServer) PopularRequest(code string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/transport/popular/" + url.PathEscape(code),
	})
}

// RoutesRequest performs GET /api/v1/transport/routes.
func (ts *TestServer) RoutesRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/transport/routes",
	})
}

// ChatRequest performs POST /api/v1/chat.
func (ts *TestServer) ChatRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/chat",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult parses the response body as a SearchResult.
func (r Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParsePopular parses the response body as a popular routes response.
func (r Response) ParsePopular() (*httpAdapter.PopularRoutesResponse, error) {
	var resp httpAdapter.PopularRoutesResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseChat parses the response body as a chat response.
func (r Response) ParseChat() (*httpAdapter.ChatResponse, error) {
	var resp httpAdapter.ChatResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// ChatRequestBody is a helper struct for building chat request bodies.
type ChatRequestBody struct {
	Messages []domain.ChatMessage `json:"messages"`
	Model    string               `json:"model,omitempty"`
}

// Ask returns a single-question chat request body.
func Ask(question string) ChatRequestBody {
	return ChatRequestBody{
		Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: question}},
	}
}

func searchBKKCNX() domain.SearchRequest {
	return domain.SearchRequest{From: "BKK", To: "CNX", Date: TestDate}
}
