package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/response"
	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/usecase"
)

// ChatHandler handles HTTP requests for the travel assistant.
type ChatHandler struct {
	useCase usecase.ChatUseCase
}

// NewChatHandler creates a new ChatHandler with the given use case.
func NewChatHandler(uc usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		useCase: uc,
	}
}

// Chat handles POST /api/v1/chat
//
// @Summary Ask the travel assistant
// @Description Forwards the conversation to the LLM upstream, falling back across configured models
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequestDTO true "Conversation"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "All models failed"
// @Failure 503 {object} response.ErrorDetail "Assistant not configured"
// @Failure 504 {object} response.ErrorDetail "Upstream timeout"
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req ChatRequestDTO
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	chatReq := ToChatRequest(&req)
	if err := chatReq.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	reply, err := h.useCase.Reply(c.Request().Context(), chatReq)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToChatResponse(reply))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ChatHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.Fields())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// A fallback chain whose last model timed out reports a timeout, not a bad gateway.
func (h *ChatHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return h.handleValidationError(c, err)
	case errors.Is(err, domain.ErrChatDisabled):
		return response.ChatDisabled(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, context.DeadlineExceeded), domain.IsUpstreamTimeout(err):
		return response.GatewayTimeout(c)
	case domain.IsAllModelsFailed(err):
		return response.BadGateway(c)
	default:
		return response.InternalServerError(c)
	}
}
