package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/osse101/PlayPredix_Go/internal/competition"
	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/grading"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// AdminHandlers groups the API-key protected catalog and grading endpoints
type AdminHandlers struct {
	competitions competition.Service
	grading      grading.Service
}

// NewAdminHandlers creates admin handlers
func NewAdminHandlers(competitions competition.Service, grading grading.Service) *AdminHandlers {
	return &AdminHandlers{competitions: competitions, grading: grading}
}

// HandleCreateCompetition creates a competition with a generated slug
// @Summary Create competition
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body domain.CreateCompetitionRequest true "Competition"
// @Success 201 {object} domain.Competition
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/competitions [post]
func (h *AdminHandlers) HandleCreateCompetition(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompetitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create competition"); err != nil {
		return
	}
	c, err := h.competitions.CreateCompetition(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Create competition", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// HandleUpdateCompetition applies a partial update
// @Summary Update competition
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Competition ID"
// @Param request body domain.UpdateCompetitionRequest true "Fields to change"
// @Success 200 {object} domain.Competition
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/competitions/{id} [put]
func (h *AdminHandlers) HandleUpdateCompetition(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateCompetitionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update competition"); err != nil {
		return
	}
	c, err := h.competitions.UpdateCompetition(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, "Update competition", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleDeleteCompetition deletes a competition and everything under it
// @Summary Delete competition
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Competition ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/competitions/{id} [delete]
func (h *AdminHandlers) HandleDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Delete competition", MsgCompetitionDeleted, h.competitions.DeleteCompetition)
}

// HandleCreateTeam creates a team
// @Summary Create team
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body domain.CreateTeamRequest true "Team"
// @Success 201 {object} domain.Team
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/teams [post]
func (h *AdminHandlers) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTeamRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create team"); err != nil {
		return
	}
	t, err := h.competitions.CreateTeam(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Create team", err)
		return
	}
	respondJSON(w, http.StatusCreated, t)
}

// HandleDeleteTeam deletes a team and its games
// @Summary Delete team
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/teams/{id} [delete]
func (h *AdminHandlers) HandleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Delete team", MsgTeamDeleted, h.competitions.DeleteTeam)
}

// HandleUploadTeamLogo stores the raw request body as the team logo
// @Summary Upload team logo
// @Tags admin
// @Accept png,jpeg,image/webp,image/svg+xml
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Success 200 {object} domain.Team
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Logo storage disabled"
// @Router /api/v1/admin/teams/{id}/logo [put]
func (h *AdminHandlers) HandleUploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxLogoBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgLogoTooLarge)
			return
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if len(body) == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgLogoEmpty)
		return
	}

	team, err := h.competitions.UploadTeamLogo(r.Context(), id, r.Header.Get("Content-Type"), bytes.NewReader(body))
	if err != nil {
		respondServiceError(w, r, "Upload team logo", err)
		return
	}
	logger.FromContext(r.Context()).Info("Team logo uploaded", "team_id", id, "bytes", len(body))
	respondJSON(w, http.StatusOK, team)
}

// HandleCreateGame schedules a game between two teams
// @Summary Create game
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body domain.CreateGameRequest true "Game"
// @Success 201 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/games [post]
func (h *AdminHandlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create game"); err != nil {
		return
	}
	g, err := h.competitions.CreateGame(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Create game", err)
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

// HandleDeleteGame deletes a game and its picks
// @Summary Delete game
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Game ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/games/{id} [delete]
func (h *AdminHandlers) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Delete game", MsgGameDeleted, h.competitions.DeleteGame)
}

// HandleSetGameResult records a winner or a draw
// @Summary Set game result
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Game ID"
// @Param request body domain.SetGameResultRequest true "Result"
// @Success 200 {object} domain.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/games/{id}/result [put]
func (h *AdminHandlers) HandleSetGameResult(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetGameResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set game result"); err != nil {
		return
	}
	g, err := h.grading.SetGameResult(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, "Set game result", err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

// HandleClearGameResult returns a game to ungraded
// @Summary Clear game result
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Game ID"
// @Success 200 {object} domain.Game
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/games/{id}/result [delete]
func (h *AdminHandlers) HandleClearGameResult(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	g, err := h.grading.ClearGameResult(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Clear game result", err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

// HandleCreateProp creates a prop prediction
// @Summary Create prop
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body domain.CreatePropRequest true "Prop"
// @Success 201 {object} domain.PropPrediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/props [post]
func (h *AdminHandlers) HandleCreateProp(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create prop"); err != nil {
		return
	}
	p, err := h.competitions.CreateProp(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Create prop", err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// HandleDeleteProp deletes a prop and its picks
// @Summary Delete prop
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prop ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/props/{id} [delete]
func (h *AdminHandlers) HandleDeleteProp(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "Delete prop", MsgPropDeleted, h.competitions.DeleteProp)
}

// HandleSetPropAnswer records the correct answer of a prop
// @Summary Set prop answer
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prop ID"
// @Param request body domain.SetPropAnswerRequest true "Answer"
// @Success 200 {object} domain.PropPrediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/props/{id}/answer [put]
func (h *AdminHandlers) HandleSetPropAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetPropAnswerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set prop answer"); err != nil {
		return
	}
	p, err := h.grading.SetPropAnswer(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, "Set prop answer", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleClearPropAnswer returns a prop to ungraded
// @Summary Clear prop answer
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prop ID"
// @Success 200 {object} domain.PropPrediction
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/props/{id}/answer [delete]
func (h *AdminHandlers) HandleClearPropAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	p, err := h.grading.ClearPropAnswer(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Clear prop answer", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *AdminHandlers) delete(w http.ResponseWriter, r *http.Request, op, msg string, del func(ctx context.Context, id int64) error) {
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	logger.FromContext(r.Context()).Info(op, "id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}
