package handler

import (
	"net/http"

	"github.com/osse101/PlayPredix_Go/internal/competition"
	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// CompetitionListResponse wraps the competition list
type CompetitionListResponse struct {
	Competitions []domain.Competition `json:"competitions"`
}

// HandleListCompetitions lists every competition
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Success 200 {object} CompetitionListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/competitions [get]
func HandleListCompetitions(svc competition.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListCompetitions(r.Context())
		if err != nil {
			respondServiceError(w, r, "List competitions", err)
			return
		}
		if list == nil {
			list = []domain.Competition{}
		}
		respondJSON(w, http.StatusOK, CompetitionListResponse{Competitions: list})
	}
}

// HandleGetCompetition returns a competition with its teams, games and props
// @Summary Get competition
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} domain.CompetitionDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/competitions/{competitionID} [get]
func HandleGetCompetition(svc competition.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "competitionID")
		if !ok {
			return
		}
		detail, err := svc.GetCompetitionDetail(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get competition", err)
			return
		}
		respondJSON(w, http.StatusOK, detail)
	}
}
