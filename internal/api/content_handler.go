package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/metadesc-api/internal/api/shared"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"github.com/phrazzld/metadesc-api/internal/store"
)

// ContentHandler stores content items that descriptions are generated for.
type ContentHandler struct {
	contents store.ContentStore
	logger   *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(contents store.ContentStore, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		contents: contents,
		logger:   logger.With(slog.String("component", "content_handler")),
	}
}

// Create handles POST /api/content.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateContentRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item := req.toDomain()
	if err := h.contents.Create(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "Failed to save content")
		return
	}

	log.Info("content item stored", slog.Int64("item_id", item.ID), slog.String("bundle", item.Bundle))
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}
