package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/retry"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/timeutil"
)

// 2026-01-28 20:00 UTC is already 2026-01-29 in Bangkok.
const chatClockTime = "2026-01-28T20:00:00Z"

func testChatConfig(models ...string) *ChatConfig {
	return &ChatConfig{
		Models:         models,
		AttemptTimeout: time.Second,
		Retry: retry.Config{
			MaxAttempts:  2,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2.0,
		},
	}
}

func userMessage(content string) domain.ChatRequest {
	return domain.ChatRequest{
		Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: content}},
	}
}

func TestChatService_Reply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)
	clock := timeutil.NewMockClockFromString(chatClockTime)

	var sent []domain.ChatMessage
	completer.EXPECT().
		Complete(gomock.Any(), "model-a", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages []domain.ChatMessage) (string, error) {
			sent = messages
			return "Take the overnight train.", nil
		})

	svc := NewChatService(completer, testChatConfig("model-a", "model-b"), WithClock(clock))

	reply, err := svc.Reply(context.Background(), userMessage("How do I get to Chiang Mai?"))

	require.NoError(t, err)
	assert.Equal(t, "Take the overnight train.", reply.Reply)
	assert.Equal(t, "model-a", reply.Model)
	assert.False(t, reply.Cached)
	assert.Equal(t, clock.Now().UTC(), reply.CreatedAt)

	require.Len(t, sent, 2)
	assert.Equal(t, domain.RoleSystem, sent[0].Role)
	assert.Contains(t, sent[0].Content, "2026-01-29")
	assert.Equal(t, "How do I get to Chiang Mai?", sent[1].Content)
}

func TestChatService_Reply_FallsBackToNextModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	gomock.InOrder(
		completer.EXPECT().
			Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("", domain.NewModelUnavailableError("model-a", 404)),
		completer.EXPECT().
			Complete(gomock.Any(), "model-b", gomock.Any()).
			Return("hello", nil),
	)

	svc := NewChatService(completer, testChatConfig("model-a", "model-b"))

	reply, err := svc.Reply(context.Background(), userMessage("hi"))

	require.NoError(t, err)
	assert.Equal(t, "model-b", reply.Model)
}

func TestChatService_Reply_RetriesRetryableErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	gomock.InOrder(
		completer.EXPECT().
			Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("", domain.NewRetryableUpstreamError("model-a", 429, errors.New("rate limited"))),
		completer.EXPECT().
			Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("second time lucky", nil),
	)

	svc := NewChatService(completer, testChatConfig("model-a", "model-b"))

	reply, err := svc.Reply(context.Background(), userMessage("hi"))

	require.NoError(t, err)
	assert.Equal(t, "model-a", reply.Model)
	assert.Equal(t, "second time lucky", reply.Reply)
}

func TestChatService_Reply_AllModelsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	lastErr := domain.NewRetryableUpstreamError("model-b", 503, errors.New("overloaded"))
	completer.EXPECT().
		Complete(gomock.Any(), "model-a", gomock.Any()).
		Return("", domain.NewUpstreamError("model-a", 400, errors.New("bad prompt")))
	completer.EXPECT().
		Complete(gomock.Any(), "model-b", gomock.Any()).
		Return("", lastErr).
		Times(2)

	svc := NewChatService(completer, testChatConfig("model-a", "model-b"))

	reply, err := svc.Reply(context.Background(), userMessage("hi"))

	assert.Nil(t, reply)
	assert.ErrorIs(t, err, domain.ErrAllModelsFailed)
	assert.ErrorIs(t, err, lastErr)
	assert.True(t, domain.IsAllModelsFailed(err))
}

func TestChatService_Reply_AttemptTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), "slow-model", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []domain.ChatMessage) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}).
		Times(2)

	cfg := testChatConfig("slow-model")
	cfg.AttemptTimeout = 10 * time.Millisecond
	svc := NewChatService(completer, cfg)

	_, err := svc.Reply(context.Background(), userMessage("hi"))

	assert.ErrorIs(t, err, domain.ErrAllModelsFailed)
	assert.True(t, domain.IsUpstreamTimeout(err))
}

func TestChatService_Reply_RequestDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), "hanging-model", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []domain.ChatMessage) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	cfg := testChatConfig("hanging-model", "never-reached")
	cfg.AttemptTimeout = 5 * time.Second
	cfg.RequestTimeout = 30 * time.Millisecond
	svc := NewChatService(completer, cfg)

	start := time.Now()
	_, err := svc.Reply(context.Background(), userMessage("hi"))

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, domain.IsUpstreamTimeout(err))
	assert.False(t, domain.IsAllModelsFailed(err))
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
}

func TestChatService_Reply_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	completer.EXPECT().
		Complete(gomock.Any(), "model-a", gomock.Any()).
		DoAndReturn(func(context.Context, string, []domain.ChatMessage) (string, error) {
			cancel()
			return "", domain.NewRetryableUpstreamError("model-a", 502, errors.New("bad gateway"))
		})

	svc := NewChatService(completer, testChatConfig("model-a", "model-b"))

	_, err := svc.Reply(ctx, userMessage("hi"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, domain.IsAllModelsFailed(err))
}

func TestChatService_Reply_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ChatRequest
	}{
		{name: "no messages", req: domain.ChatRequest{}},
		{name: "unknown role", req: domain.ChatRequest{Messages: []domain.ChatMessage{{Role: "tool", Content: "x"}}}},
		{name: "blank content", req: domain.ChatRequest{Messages: []domain.ChatMessage{{Role: domain.RoleUser, Content: "  "}}}},
		{name: "too many messages", req: domain.ChatRequest{Messages: make([]domain.ChatMessage, domain.MaxChatMessages+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := domain.NewMockChatCompleter(ctrl)

			svc := NewChatService(completer, testChatConfig("model-a"))

			_, err := svc.Reply(context.Background(), tt.req)
			assert.True(t, domain.IsInvalidRequest(err))
		})
	}
}

func TestChatService_Reply_Disabled(t *testing.T) {
	svc := NewChatService(nil, testChatConfig("model-a"))

	_, err := svc.Reply(context.Background(), userMessage("hi"))

	assert.ErrorIs(t, err, domain.ErrChatDisabled)
}

func TestChatService_ModelChain(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      []string
	}{
		{name: "no preference", requested: "", want: []string{"model-a", "model-b"}},
		{name: "configured model moves to front", requested: "model-b", want: []string{"model-b", "model-a"}},
		{name: "unknown model is ignored", requested: "model-x", want: []string{"model-a", "model-b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := domain.NewMockChatCompleter(ctrl)

			var called []string
			completer.EXPECT().
				Complete(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, model string, _ []domain.ChatMessage) (string, error) {
					called = append(called, model)
					return "", domain.NewModelUnavailableError(model, 404)
				}).
				AnyTimes()

			svc := NewChatService(completer, testChatConfig("model-a", "model-b", "model-a"))

			req := userMessage("hi")
			req.Model = tt.requested
			_, err := svc.Reply(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrModelUnavailable)
			assert.Equal(t, tt.want, called)
		})
	}
}

func TestChatService_Reply_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), "model-a", gomock.Any()).
		Return("Pai is lovely in November.", nil).
		Times(1)

	clock := timeutil.NewMockClockFromString(chatClockTime)
	cfg := testChatConfig("model-a")
	cfg.CacheTTL = time.Minute
	svc := NewChatService(completer, cfg, WithClock(clock))

	first, err := svc.Reply(context.Background(), userMessage("When should I visit Pai?"))
	require.NoError(t, err)
	assert.False(t, first.Cached)

	// A cached reply keeps the time it was first produced.
	clock.Set(clock.Now().Add(30 * time.Second))

	second, err := svc.Reply(context.Background(), userMessage("When should I visit Pai?"))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Reply, second.Reply)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, first.Cached, "cached copy must not alias the first reply")
}

func TestChatService_Reply_CacheDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := domain.NewMockChatCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), "model-a", gomock.Any()).
		Return("ok", nil).
		Times(2)

	svc := NewChatService(completer, testChatConfig("model-a"))

	for i := 0; i < 2; i++ {
		reply, err := svc.Reply(context.Background(), userMessage("hi"))
		require.NoError(t, err)
		assert.False(t, reply.Cached)
	}
}

func TestNewChatService_Defaults(t *testing.T) {
	svc := NewChatService(nil, nil).(*chatService)

	assert.Equal(t, DefaultChatModels, svc.models)
	assert.Equal(t, DefaultAttemptTimeout, svc.attemptTimeout)
	assert.Equal(t, DefaultRequestTimeout, svc.requestTimeout)
	assert.Equal(t, retry.UpstreamConfig.MaxAttempts, svc.retryConfig.MaxAttempts)
	assert.NotNil(t, svc.cache)
}

func TestCacheKey(t *testing.T) {
	msgs := []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}}

	assert.Equal(t, cacheKey([]string{"a"}, msgs), cacheKey([]string{"a"}, msgs))
	assert.NotEqual(t, cacheKey([]string{"a"}, msgs), cacheKey([]string{"b"}, msgs))
	assert.NotEqual(t, cacheKey([]string{"a"}, msgs), cacheKey([]string{"a"}, []domain.ChatMessage{{Role: domain.RoleUser, Content: "hello"}}))
}
