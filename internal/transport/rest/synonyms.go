package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// resolver defines the minimal interface needed by SynonymHandler.
type resolver interface {
	Resolve(ctx context.Context, word string) ([]string, error)
}

// SynonymHandler serves the synonym lookup endpoint.
type SynonymHandler struct {
	svc resolver
	log *slog.Logger
}

// NewSynonymHandler creates a SynonymHandler.
func NewSynonymHandler(svc resolver, logger *slog.Logger) *SynonymHandler {
	return &SynonymHandler{svc: svc, log: logger.With("handler", "synonyms")}
}

type synonymsResponse struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
}

// Get handles GET /api/synonyms?word=.
func (h *SynonymHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	synonyms, err := h.svc.Resolve(r.Context(), word)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if synonyms == nil {
		synonyms = []string{}
	}

	writeJSON(w, http.StatusOK, synonymsResponse{Word: word, Synonyms: synonyms})
}

func (h *SynonymHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var resErr *domain.ResolutionError
	switch {
	case errors.As(err, &resErr):
		h.log.WarnContext(r.Context(), "synonym resolution failed",
			slog.String("word", resErr.Word),
			slog.Bool("connectivity", resErr.Connectivity()),
		)
		writeError(w, http.StatusBadGateway, resErr.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
