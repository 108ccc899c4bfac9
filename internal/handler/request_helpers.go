package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/auth"
	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
//
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
// Example usage:
//
//	var req domain.SubmitPickRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit pick"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgRequestDecodeError, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is missing
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// int64Param parses a positive integer URL parameter.
// If ok is false the response has been written.
func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidID, name))
		return 0, false
	}
	return id, true
}

// uuidParam parses a UUID URL parameter
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidID, name))
		return uuid.Nil, false
	}
	return id, true
}

// leagueIDQuery reads the optional league_id query parameter. A missing
// parameter selects the public context.
func leagueIDQuery(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("league_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLeagueID)
		return nil, false
	}
	return &id, true
}

// limitQuery reads the limit query parameter, bounded by MaxLeaderboardLimit
func limitQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultLeaderboardLimit)))
	if err != nil || limit < 1 || limit > MaxLeaderboardLimit {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// requireParticipant returns the authenticated caller. Routes using it sit
// behind auth.Required, so a miss means a wiring mistake and is reported as 401.
func requireParticipant(w http.ResponseWriter, r *http.Request) (domain.Participant, bool) {
	p, ok := auth.ParticipantFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgParticipantRequired)
		return domain.Participant{}, false
	}
	return domain.Participant{ID: p.ID, DisplayName: p.DisplayName}, true
}
