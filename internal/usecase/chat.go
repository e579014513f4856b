package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/retry"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/timeutil"
)

// Default chat proxy values.
const (
	DefaultAttemptTimeout = 20 * time.Second
	DefaultRequestTimeout = 45 * time.Second
	DefaultChatCacheTTL   = 10 * time.Minute
)

// DefaultChatModels is the fallback chain used when none is configured.
var DefaultChatModels = []string{
	"gpt-4o-mini",
	"gpt-3.5-turbo",
}

const systemPromptTemplate = `You are the travel assistant of Siam Trails, a site that helps travellers plan trips around Thailand.
Answer questions about destinations, getting around by bus, train and minibus, and practical travel tips.
Keep answers short and friendly. When a traveller asks how to get somewhere, suggest searching the route on the site to compare schedules and book.
Today's date in Thailand is %s.`

// ChatUseCase defines the chat proxy operations.
type ChatUseCase interface {
	// Reply forwards the conversation to the upstream, walking the model
	// fallback chain until one model answers.
	Reply(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error)
}

// ChatConfig contains configuration options for the chat use case.
type ChatConfig struct {
	// Models is the ordered fallback chain
	Models []string

	// AttemptTimeout bounds a single upstream call
	AttemptTimeout time.Duration

	// RequestTimeout bounds a whole Reply, across every model and retry.
	// It must stay below the HTTP server write timeout.
	RequestTimeout time.Duration

	// Retry controls retries of one model before falling through to the next
	Retry retry.Config

	// CacheTTL is how long replies are reused; zero disables the cache
	CacheTTL time.Duration
}

// DefaultChatConfig returns the default configuration.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		Models:         append([]string(nil), DefaultChatModels...),
		AttemptTimeout: DefaultAttemptTimeout,
		RequestTimeout: DefaultRequestTimeout,
		Retry:          retry.UpstreamConfig,
		CacheTTL:       DefaultChatCacheTTL,
	}
}

// ChatOption configures optional collaborators of the chat service.
type ChatOption func(*chatService)

// WithClock sets the clock used for the prompt date and reply timestamps.
func WithClock(clock timeutil.Clock) ChatOption {
	return func(s *chatService) {
		s.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) ChatOption {
	return func(s *chatService) {
		s.log = l.WithComponent("chat")
	}
}

// chatService implements ChatUseCase on top of a ChatCompleter.
type chatService struct {
	completer      domain.ChatCompleter
	models         []string
	allowed        map[string]bool
	attemptTimeout time.Duration
	requestTimeout time.Duration
	retryConfig    retry.Config
	cache          *cache.Cache
	cacheTTL       time.Duration
	clock          timeutil.Clock
	log            *logger.Logger
}

// NewChatService creates a ChatUseCase. A nil completer yields a service whose
// every reply fails with domain.ErrChatDisabled.
// If config is nil, default values are used.
func NewChatService(completer domain.ChatCompleter, config *ChatConfig, opts ...ChatOption) ChatUseCase {
	cfg := DefaultChatConfig()
	if config != nil {
		if len(config.Models) > 0 {
			cfg.Models = config.Models
		}
		if config.AttemptTimeout > 0 {
			cfg.AttemptTimeout = config.AttemptTimeout
		}
		if config.RequestTimeout > 0 {
			cfg.RequestTimeout = config.RequestTimeout
		}
		if config.Retry.MaxAttempts > 0 {
			cfg.Retry = config.Retry
		}
		cfg.CacheTTL = config.CacheTTL
	}

	s := &chatService{
		completer:      completer,
		models:         dedupe(cfg.Models),
		attemptTimeout: cfg.AttemptTimeout,
		requestTimeout: cfg.RequestTimeout,
		retryConfig:    cfg.Retry.WithRetryIf(domain.IsRetryable),
		cacheTTL:       cfg.CacheTTL,
		clock:          timeutil.NewRealClock(),
		log:            logger.Nop(),
	}

	s.allowed = make(map[string]bool, len(s.models))
	for _, m := range s.models {
		s.allowed[m] = true
	}

	if s.cacheTTL > 0 {
		s.cache = cache.New(s.cacheTTL, 2*s.cacheTTL)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Reply implements ChatUseCase.Reply.
func (s *chatService) Reply(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error) {
	if s.completer == nil || len(s.models) == 0 {
		return nil, domain.ErrChatDisabled
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	chain := s.modelChain(req.Model)

	key := cacheKey(chain, req.Messages)
	if cached, ok := s.cached(key); ok {
		s.log.Debug().Str("model", cached.Model).Msg("chat reply served from cache")
		return cached, nil
	}

	messages := s.withSystemPrompt(req.Messages)

	parent := ctx
	ctx, cancel := context.WithTimeout(parent, s.requestTimeout)
	defer cancel()

	var lastErr error
	for _, model := range chain {
		text, err := s.complete(ctx, model, messages)
		if err == nil {
			reply := &domain.ChatReply{
				Reply:     text,
				Model:     model,
				CreatedAt: s.clock.Now().UTC(),
			}
			s.store(key, reply)
			return reply, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			if parent.Err() == nil {
				s.log.WithModel(model).Warn().
					Dur("request_timeout", s.requestTimeout).
					Msg("chat request deadline reached, abandoning fallback chain")
				return nil, fmt.Errorf("chat deadline of %s exceeded: %w", s.requestTimeout, domain.NewUpstreamTimeoutError(model))
			}
			return nil, ctxErr
		}

		s.log.WithModel(model).Warn().Err(err).Msg("chat model failed, falling back")
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", domain.ErrAllModelsFailed, lastErr)
}

// complete calls one model with retry, bounding each attempt by the attempt timeout.
func (s *chatService) complete(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	cfg := s.retryConfig.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		s.log.WithModel(model).Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("retrying chat model")
	})

	var text string
	err := retry.Do(ctx, func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		defer cancel()

		var err error
		text, err = s.completer.Complete(attemptCtx, model, messages)
		if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil && !domain.IsUpstreamTimeout(err) {
			return domain.NewUpstreamTimeoutError(model)
		}
		return err
	}, cfg)
	return text, err
}

// modelChain returns the requested model followed by the configured ones.
// A requested model outside the configured set is ignored.
func (s *chatService) modelChain(requested string) []string {
	if requested == "" || !s.allowed[requested] {
		return s.models
	}
	return dedupe(append([]string{requested}, s.models...))
}

func (s *chatService) withSystemPrompt(messages []domain.ChatMessage) []domain.ChatMessage {
	today := timeutil.FormatDate(timeutil.NowIn(s.clock, timeutil.ICT))

	out := make([]domain.ChatMessage, 0, len(messages)+1)
	out = append(out, domain.ChatMessage{
		Role:    domain.RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate, today),
	})
	return append(out, messages...)
}

func (s *chatService) cached(key string) (*domain.ChatReply, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	reply := v.(domain.ChatReply)
	reply.Cached = true
	return &reply, true
}

func (s *chatService) store(key string, reply *domain.ChatReply) {
	if s.cache == nil {
		return
	}
	s.cache.Set(key, *reply, cache.DefaultExpiration)
}

// cacheKey hashes the model chain and the client conversation.
func cacheKey(chain []string, messages []domain.ChatMessage) string {
	payload, _ := json.Marshal(struct {
		Models   []string             `json:"models"`
		Messages []domain.ChatMessage `json:"messages"`
	}{chain, messages})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func dedupe(models []string) []string {
	seen := make(map[string]bool, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// Ensure chatService implements ChatUseCase at compile time.
var _ ChatUseCase = (*chatService)(nil)
