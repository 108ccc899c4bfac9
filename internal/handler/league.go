package handler

import (
	"net/http"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/league"
	"github.com/osse101/PlayPredix_Go/internal/logger"
)

// LeagueListResponse wraps the caller's leagues
type LeagueListResponse struct {
	Leagues []domain.League `json:"leagues"`
}

// MemberListResponse wraps a league roster
type MemberListResponse struct {
	Members []domain.LeagueMember `json:"members"`
}

// LeagueHandlers groups the participant league endpoints
type LeagueHandlers struct {
	svc league.Service
}

// NewLeagueHandlers creates league handlers
func NewLeagueHandlers(svc league.Service) *LeagueHandlers {
	return &LeagueHandlers{svc: svc}
}

// HandleCreate creates a league with the caller as admin
// @Summary Create league
// @Tags leagues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateLeagueRequest true "League"
// @Success 201 {object} domain.League
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues [post]
func (h *LeagueHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	var req domain.CreateLeagueRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create league"); err != nil {
		return
	}
	l, err := h.svc.CreateLeague(r.Context(), participant, req)
	if err != nil {
		respondServiceError(w, r, "Create league", err)
		return
	}
	logger.FromContext(r.Context()).Info("League created", "league_id", l.ID, "competition_id", l.CompetitionID)
	respondJSON(w, http.StatusCreated, l)
}

// HandleJoin joins a league by invite code. Joining twice is a no-op.
// @Summary Join league
// @Tags leagues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.JoinLeagueRequest true "Invite code"
// @Success 200 {object} domain.League
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues/join [post]
func (h *LeagueHandlers) HandleJoin(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	var req domain.JoinLeagueRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Join league"); err != nil {
		return
	}
	l, err := h.svc.JoinLeague(r.Context(), participant, req)
	if err != nil {
		respondServiceError(w, r, "Join league", err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleListMine lists the leagues the caller belongs to
// @Summary List my leagues
// @Tags leagues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LeagueListResponse
// @Router /api/v1/leagues [get]
func (h *LeagueHandlers) HandleListMine(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	leagues, err := h.svc.ListMyLeagues(r.Context(), participant.ID)
	if err != nil {
		respondServiceError(w, r, "List leagues", err)
		return
	}
	if leagues == nil {
		leagues = []domain.League{}
	}
	respondJSON(w, http.StatusOK, LeagueListResponse{Leagues: leagues})
}

// HandleGet returns one league the caller belongs to
// @Summary Get league
// @Tags leagues
// @Produce json
// @Security BearerAuth
// @Param leagueID path string true "League ID"
// @Success 200 {object} domain.League
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues/{leagueID} [get]
func (h *LeagueHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	leagueID, ok := uuidParam(w, r, "leagueID")
	if !ok {
		return
	}
	l, err := h.svc.GetLeague(r.Context(), participant.ID, leagueID)
	if err != nil {
		respondServiceError(w, r, "Get league", err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleMembers lists the members of a league the caller belongs to
// @Summary List league members
// @Tags leagues
// @Produce json
// @Security BearerAuth
// @Param leagueID path string true "League ID"
// @Success 200 {object} MemberListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues/{leagueID}/members [get]
func (h *LeagueHandlers) HandleMembers(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	leagueID, ok := uuidParam(w, r, "leagueID")
	if !ok {
		return
	}
	members, err := h.svc.ListMembers(r.Context(), participant.ID, leagueID)
	if err != nil {
		respondServiceError(w, r, "List members", err)
		return
	}
	respondJSON(w, http.StatusOK, MemberListResponse{Members: members})
}

// HandleLeave removes the caller from a league. Their league picks are kept.
// @Summary Leave league
// @Tags leagues
// @Produce json
// @Security BearerAuth
// @Param leagueID path string true "League ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues/{leagueID}/leave [post]
func (h *LeagueHandlers) HandleLeave(w http.ResponseWriter, r *http.Request) {
	participant, ok := requireParticipant(w, r)
	if !ok {
		return
	}
	leagueID, ok := uuidParam(w, r, "leagueID")
	if !ok {
		return
	}
	if err := h.svc.LeaveLeague(r.Context(), participant.ID, leagueID); err != nil {
		respondServiceError(w, r, "Leave league", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeftLeague})
}
