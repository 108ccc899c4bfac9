package handler

import (
	"net/http"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/pick"
)

// PickListResponse wraps the caller's picks
type PickListResponse struct {
	Picks []domain.UserPick `json:"picks"`
}

// HandleSubmitPick creates or overwrites the caller's pick
// @Summary Submit pick
// @Description Creates the pick, or overwrites the caller's earlier pick on the same game or prop in the same context
// @Tags picks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SubmitPickRequest true "Pick"
// @Success 201 {object} domain.PickResult "Created"
// @Success 200 {object} domain.PickResult "Overwritten"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Locked"
// @Router /api/v1/picks [post]
func HandleSubmitPick(svc pick.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participant, ok := requireParticipant(w, r)
		if !ok {
			return
		}
		var req domain.SubmitPickRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit pick"); err != nil {
			return
		}

		result, err := svc.SubmitPick(r.Context(), participant, req)
		if err != nil {
			respondServiceError(w, r, "Submit pick", err)
			return
		}

		logger.FromContext(r.Context()).Info("Pick submitted",
			"competition_id", req.CompetitionID, "pick_id", result.Pick.ID, "created", result.Created)

		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		respondJSON(w, status, result)
	}
}

// HandleListMyPicks lists the caller's picks in one context
// @Summary List my picks
// @Tags picks
// @Produce json
// @Security BearerAuth
// @Param competitionID path int true "Competition ID"
// @Param league_id query string false "League ID"
// @Success 200 {object} PickListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/competitions/{competitionID}/picks [get]
func HandleListMyPicks(svc pick.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participant, ok := requireParticipant(w, r)
		if !ok {
			return
		}
		competitionID, ok := int64Param(w, r, "competitionID")
		if !ok {
			return
		}
		leagueID, ok := leagueIDQuery(w, r)
		if !ok {
			return
		}

		picks, err := svc.ListMyPicks(r.Context(), participant.ID, competitionID, leagueID)
		if err != nil {
			respondServiceError(w, r, "List picks", err)
			return
		}
		if picks == nil {
			picks = []domain.UserPick{}
		}
		respondJSON(w, http.StatusOK, PickListResponse{Picks: picks})
	}
}
