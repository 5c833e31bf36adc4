package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/service/auth"
	"github.com/phrazzld/metadesc-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"wrapped expired token", fmt.Errorf("auth: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"content not found", store.ErrContentNotFound, http.StatusNotFound},
		{
			"store error wrapping not found",
			store.NewStoreError("content_item", "get", "lookup failed", store.ErrContentNotFound),
			http.StatusNotFound,
		},
		{"content exists", store.ErrContentExists, http.StatusConflict},
		{"invalid entity", fmt.Errorf("%w: bad", store.ErrInvalidEntity), http.StatusBadRequest},
		{"validation error", domain.NewValidationError("bundle", "is required", nil), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{
			"store error with unknown cause",
			store.NewStoreError("content_item", "get", "query failed", errors.New("connection refused")),
			http.StatusInternalServerError,
		},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"content not found", store.ErrContentNotFound, "Content not found"},
		{"generic not found", store.ErrNotFound, "Not found"},
		{"content exists", store.ErrContentExists, "Content already exists"},
		{
			"domain validation error",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.NewValidationError("id", "must be positive", domain.ErrInvalidID)),
			"Invalid id: must be positive",
		},
		{"invalid entity", store.ErrInvalidEntity, "Invalid entity data"},
		{
			"database details hidden",
			fmt.Errorf("query: %w", errors.New("syntax error at or near SELECT")),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.expectedMessage, message)
			if tt.err != nil && tt.expectedMessage == "An unexpected error occurred" {
				assert.NotContains(t, message, tt.err.Error())
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := validator.New().Struct(&CreateContentRequest{Bundle: "article"})
	require.Error(t, err)

	assert.Equal(t, "Invalid ID: required field", SanitizeValidationError(err))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("mapped error", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleAPIError(w, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrContentNotFound, "fallback")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Content not found"}`, w.Body.String())
	})

	t.Run("unmapped error uses fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleAPIError(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("dial tcp"), "Failed to save content")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to save content", body["error"])
	})
}
