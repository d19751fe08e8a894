// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/models"
	"github.com/tessera-hq/tessera/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent
// log injection. Newlines and other control bytes become escaped hex.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondOK sends a success envelope with query timing metadata.
func respondOK(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends the VALIDATION_ERROR shape with per-field
// details.
func respondValidationError(w http.ResponseWriter, ve *validation.RequestValidationError) {
	apiErr := ve.ToAPIError()
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

// respondStoreError maps database sentinel errors onto the API taxonomy.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
	case errors.Is(err, database.ErrDuplicateSlug):
		respondError(w, http.StatusConflict, "VALIDATION_ERROR", "slug is already in use", nil)
	case errors.Is(err, database.ErrVersionConflict):
		respondError(w, http.StatusConflict, "SAVE_CONFLICT",
			"theme state was modified by another save; reload and retry", nil)
	default:
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "query execution failed", err)
	}
}

// decodeBody decodes and validates a JSON request body. A false return
// means the response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed JSON body", err)
		return false
	}
	if ve := validation.ValidateStruct(dst); ve != nil {
		respondValidationError(w, ve)
		return false
	}
	return true
}

// pathUUID parses a UUID path parameter. A zero return means the
// response has already been written.
func pathUUID(w http.ResponseWriter, value, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be a UUID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// pagination clamps page/per_page query params to configured limits.
func (h *Handler) pagination(r *http.Request) (page, perPage int) {
	page = getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage = getIntParam(r, "per_page", h.config.API.DefaultPageSize)
	if perPage < 1 {
		perPage = h.config.API.DefaultPageSize
	}
	if perPage > h.config.API.MaxPageSize {
		perPage = h.config.API.MaxPageSize
	}
	return page, perPage
}

// paginationInfo builds the list envelope's pagination block.
func paginationInfo(page, perPage int, total int64) models.PaginationInfo {
	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	return models.PaginationInfo{
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: totalPages,
	}
}
