package http

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/internal/domain"
	"github.com/souqly/voicesearch/internal/usecase"
)

// maxTranscriptRunes bounds a single utterance
const maxTranscriptRunes = 1000

// Handler holds dependencies for HTTP handlers
type Handler struct {
	voiceSearch *usecase.VoiceSearchService
	service     string
	version     string
	logger      zerolog.Logger
}

// NewHandler creates a new HTTP handler. A nil voiceSearch makes the voice
// endpoints answer 503. service is the name reported by the health check.
func NewHandler(voiceSearch *usecase.VoiceSearchService, service, version string, logger *zerolog.Logger) *Handler {
	if version == "" {
		version = "dev"
	}
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Handler{
		voiceSearch: voiceSearch,
		service:     service,
		version:     version,
		logger:      log,
	}
}

// VoiceSearchRequest is the body of POST /api/v1/voice/search
type VoiceSearchRequest struct {
	Transcript string `json:"transcript"`
	UserName   string `json:"userName"`
}

// VoiceSearchResponse is the body returned by a successful voice search
type VoiceSearchResponse struct {
	Products    []domain.RankedProduct `json:"products"`
	Keywords    domain.KeywordRecord   `json:"keywords"`
	SearchQuery string                 `json:"searchQuery"`
	Reply       string                 `json:"reply"`
}

// KeywordsRequest is the body of POST /api/v1/voice/keywords
type KeywordsRequest struct {
	Text string `json:"text"`
}

// KeywordsResponse carries the extraction result without a catalog call
type KeywordsResponse struct {
	Keywords    domain.KeywordRecord `json:"keywords"`
	SearchQuery string               `json:"searchQuery"`
}

// RespondRequest is the body of POST /api/v1/voice/respond
type RespondRequest struct {
	Products    []domain.RankedProduct `json:"products"`
	Keywords    domain.KeywordRecord   `json:"keywords"`
	SearchQuery string                 `json:"searchQuery"`
	UserName    string                 `json:"userName"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
		"version": h.version,
	})
}

// VoiceSearch runs the full pipeline for one transcript and returns the ranked
// products together with the reply to speak
func (h *Handler) VoiceSearch(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req VoiceSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.ErrInvalidRequest, "")
		return
	}
	if utf8.RuneCountInString(req.Transcript) > maxTranscriptRunes {
		h.writeError(c, domain.ErrInvalidRequest, "")
		return
	}

	session := &domain.VoiceSession{UserName: req.UserName}
	result, reply, err := h.voiceSearch.Handle(c.Request.Context(), session, req.Transcript)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("voice search failed")
		h.writeError(c, err, reply)
		return
	}

	c.JSON(http.StatusOK, VoiceSearchResponse{
		Products:    result.Products,
		Keywords:    result.Keywords,
		SearchQuery: result.SearchQuery,
		Reply:       reply,
	})
}

// ExtractKeywords returns the keyword record and search query for a text
func (h *Handler) ExtractKeywords(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req KeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.ErrInvalidRequest, "")
		return
	}
	if utf8.RuneCountInString(req.Text) > maxTranscriptRunes {
		h.writeError(c, domain.ErrInvalidRequest, "")
		return
	}

	keywords, query := h.voiceSearch.Analyze(req.Text)
	c.JSON(http.StatusOK, KeywordsResponse{
		Keywords:    keywords,
		SearchQuery: query,
	})
}

// Respond builds a spoken reply for results the client already holds
func (h *Handler) Respond(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.ErrInvalidRequest, "")
		return
	}

	reply := h.voiceSearch.Respond(req.Products, req.Keywords, req.SearchQuery, req.UserName)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.voiceSearch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "voice search not configured",
		})
		return false
	}
	return true
}

// writeError maps domain errors to HTTP responses
func (h *Handler) writeError(c *gin.Context, err error, reply string) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
		message = "invalid request body"
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
		message = domain.ErrRateLimited.Error()
	case errors.Is(err, domain.ErrCatalogUnavailable):
		status = http.StatusBadGateway
		message = "product catalog temporarily unavailable"
	}

	body := gin.H{"error": message}
	if reply != "" {
		body["reply"] = reply
	}
	c.JSON(status, body)
}
