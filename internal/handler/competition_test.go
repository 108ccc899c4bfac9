package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

func TestHandleListCompetitions(t *testing.T) {
	svc := &MockCompetitionService{}
	svc.On("ListCompetitions", mock.Anything).Return(nil, nil).Once()
	svc.On("ListCompetitions", mock.Anything).Return([]domain.Competition{{ID: 1, Name: "Euro", Slug: "euro"}}, nil).Once()

	w := httptest.NewRecorder()
	HandleListCompetitions(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"competitions": []}`, w.Body.String())

	w = httptest.NewRecorder()
	HandleListCompetitions(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"euro"`)
}

func TestHandleGetCompetition(t *testing.T) {
	svc := &MockCompetitionService{}
	svc.On("GetCompetitionDetail", mock.Anything, int64(1)).
		Return(&domain.CompetitionDetail{Competition: domain.Competition{ID: 1, Name: "Euro"}, Games: []domain.Game{{ID: 3}}}, nil)
	svc.On("GetCompetitionDetail", mock.Anything, int64(2)).Return(nil, domain.ErrCompetitionNotFound)

	w := httptest.NewRecorder()
	HandleGetCompetition(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "competitionID", "1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"games":[{"id":3`)

	w = httptest.NewRecorder()
	HandleGetCompetition(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "competitionID", "2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgCompetitionNotFound)
}
