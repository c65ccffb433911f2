package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/feeling-quotes/internal/app"
	"github.com/jsamuelsen/feeling-quotes/internal/domain"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/logging"
)

// Client-facing messages. These strings are part of the API contract.
const (
	MsgNoQuotes            = "No quotes found"
	MsgNoQuotesForFeeling  = "No quotes found for this feeling"
	MsgFeelingRequired     = "Feeling parameter is required"
	MsgTextFeelingRequired = "Text and feeling are required"
	MsgInvalidBody         = "invalid request body"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetRandomQuote handles GET /quotes/random
// Returns one quote chosen at random from the whole store.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, MsgNoQuotes)
			return
		}

		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromDomain(quote))
}

// GetQuoteByFeeling handles GET /quotes/by-feeling?feeling=X
// Returns one random quote whose feeling matches X exactly.
//
// @Summary Get a random quote for a feeling
// @Tags quotes
// @Produce json
// @Param feeling query string true "Feeling label, case-sensitive"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes/by-feeling [get]
func (h *QuoteHandler) GetQuoteByFeeling(c *gin.Context) {
	feeling := domain.Feeling(c.Query("feeling"))
	if feeling.IsZero() {
		dto.RespondWithErrorCode(c, dto.ErrorCodeValidation, MsgFeelingRequired)
		return
	}

	ctx := logging.With(c.Request.Context(), slog.String("feeling", feeling.String()))
	c.Request = c.Request.WithContext(ctx)

	quote, err := h.service.GetRandomQuoteByFeeling(ctx, feeling)
	if err != nil {
		if domain.IsNotFound(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, MsgNoQuotesForFeeling)
			return
		}

		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromDomain(quote))
}

// AddQuote handles POST /quotes
// Stores a new quote. A missing author is stored as "Unknown".
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.AddQuoteRequest true "Quote to add"
// @Success 200 {object} dto.AddQuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if errors.Is(err, dto.ErrBinding) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, MsgInvalidBody)
			return
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			MsgTextFeelingRequired,
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	ctx := logging.With(c.Request.Context(), slog.String("feeling", req.Feeling))
	c.Request = c.Request.WithContext(ctx)

	quote, err := h.service.AddQuote(ctx, req.Text, req.Author, domain.Feeling(req.Feeling))
	if err != nil {
		if domain.IsValidation(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeValidation, MsgTextFeelingRequired)
			return
		}

		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddQuoteResponse{
		ID:      quote.ID,
		Message: dto.MessageQuoteAdded,
	})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/by-feeling", h.GetQuoteByFeeling)
	quotes.POST("", h.AddQuote)
}
