package handler

import (
	"net/http"

	"github.com/osse101/PlayPredix_Go/internal/auth"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
)

// HandleGetLeaderboard returns the public board, or a league board when
// league_id is given. An authenticated caller also gets their own row in "me".
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param league_id query string false "League ID"
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {object} domain.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/competitions/{competitionID}/leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID, ok := int64Param(w, r, "competitionID")
		if !ok {
			return
		}
		leagueID, ok := leagueIDQuery(w, r)
		if !ok {
			return
		}
		limit, ok := limitQuery(w, r)
		if !ok {
			return
		}

		q := leaderboard.Query{CompetitionID: competitionID, LeagueID: leagueID, Limit: limit}
		if p, ok := auth.ParticipantFromContext(r.Context()); ok {
			q.ParticipantID = &p.ID
		}

		board, err := svc.GetLeaderboard(r.Context(), q)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, board)
	}
}
