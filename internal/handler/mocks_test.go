package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PlayPredix_Go/internal/auth"
	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockPickService mocks pick.Service
type MockPickService struct {
	mock.Mock
}

func (m *MockPickService) SubmitPick(ctx context.Context, p domain.Participant, req domain.SubmitPickRequest) (*domain.PickResult, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickResult), args.Error(1)
}

func (m *MockPickService) ListMyPicks(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	args := m.Called(ctx, participantID, competitionID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserPick), args.Error(1)
}

// MockLeaderboardService mocks leaderboard.Service
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, q leaderboard.Query) (*domain.Leaderboard, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

// MockCompetitionService mocks competition.Service
type MockCompetitionService struct {
	mock.Mock
}

func (m *MockCompetitionService) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Competition), args.Error(1)
}

func (m *MockCompetitionService) GetCompetitionDetail(ctx context.Context, id int64) (*domain.CompetitionDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompetitionDetail), args.Error(1)
}

func (m *MockCompetitionService) CreateCompetition(ctx context.Context, req domain.CreateCompetitionRequest) (*domain.Competition, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competition), args.Error(1)
}

func (m *MockCompetitionService) UpdateCompetition(ctx context.Context, id int64, req domain.UpdateCompetitionRequest) (*domain.Competition, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competition), args.Error(1)
}

func (m *MockCompetitionService) DeleteCompetition(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompetitionService) CreateTeam(ctx context.Context, req domain.CreateTeamRequest) (*domain.Team, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockCompetitionService) DeleteTeam(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompetitionService) UploadTeamLogo(ctx context.Context, id int64, contentType string, body io.Reader) (*domain.Team, error) {
	args := m.Called(ctx, id, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockCompetitionService) CreateGame(ctx context.Context, req domain.CreateGameRequest) (*domain.Game, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockCompetitionService) DeleteGame(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompetitionService) CreateProp(ctx context.Context, req domain.CreatePropRequest) (*domain.PropPrediction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropPrediction), args.Error(1)
}

func (m *MockCompetitionService) DeleteProp(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockGradingService mocks grading.Service
type MockGradingService struct {
	mock.Mock
}

func (m *MockGradingService) SetGameResult(ctx context.Context, id int64, req domain.SetGameResultRequest) (*domain.Game, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGradingService) ClearGameResult(ctx context.Context, id int64) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGradingService) SetPropAnswer(ctx context.Context, id int64, req domain.SetPropAnswerRequest) (*domain.PropPrediction, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropPrediction), args.Error(1)
}

func (m *MockGradingService) ClearPropAnswer(ctx context.Context, id int64) (*domain.PropPrediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropPrediction), args.Error(1)
}

// withURLParams attaches chi route parameters to a request
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asParticipant marks the request as authenticated
func asParticipant(r *http.Request, p auth.Participant) *http.Request {
	return r.WithContext(auth.WithParticipant(r.Context(), p))
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
