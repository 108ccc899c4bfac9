package competition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/repository"
	"github.com/osse101/PlayPredix_Go/internal/storage"
)

// Service defines the interface for competition reads and admin mutations
type Service interface {
	ListCompetitions(ctx context.Context) ([]domain.Competition, error)
	GetCompetitionDetail(ctx context.Context, id int64) (*domain.CompetitionDetail, error)

	CreateCompetition(ctx context.Context, req domain.CreateCompetitionRequest) (*domain.Competition, error)
	UpdateCompetition(ctx context.Context, id int64, req domain.UpdateCompetitionRequest) (*domain.Competition, error)
	DeleteCompetition(ctx context.Context, id int64) error

	CreateTeam(ctx context.Context, req domain.CreateTeamRequest) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	UploadTeamLogo(ctx context.Context, id int64, contentType string, body io.Reader) (*domain.Team, error)

	CreateGame(ctx context.Context, req domain.CreateGameRequest) (*domain.Game, error)
	DeleteGame(ctx context.Context, id int64) error

	CreateProp(ctx context.Context, req domain.CreatePropRequest) (*domain.PropPrediction, error)
	DeleteProp(ctx context.Context, id int64) error
}

type service struct {
	repo  repository.Competition
	logos storage.LogoStore
}

// NewService creates a new competition service
func NewService(repo repository.Competition, logos storage.LogoStore) Service {
	return &service{repo: repo, logos: logos}
}

func (s *service) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	return s.repo.ListCompetitions(ctx)
}

// GetCompetitionDetail returns the competition with everything that can be picked
func (s *service) GetCompetitionDetail(ctx context.Context, id int64) (*domain.CompetitionDetail, error) {
	c, err := s.repo.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.ListTeamsForCompetition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	games, err := s.repo.ListGames(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	props, err := s.repo.ListProps(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list props: %w", err)
	}
	return &domain.CompetitionDetail{Competition: *c, Teams: teams, Games: games, Props: props}, nil
}

func (s *service) CreateCompetition(ctx context.Context, req domain.CreateCompetitionRequest) (*domain.Competition, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	if req.LockDate.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgLockDateRequired)
	}

	base := slug.Make(name)
	if base == "" {
		base = FallbackSlug
	}

	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}
		taken, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			continue
		}

		c := &domain.Competition{
			Name:        name,
			Slug:        candidate,
			Description: req.Description,
			LockDate:    req.LockDate.UTC(),
			AllowDraws:  req.AllowDraws,
		}
		err = s.repo.CreateCompetition(ctx, c)
		if errors.Is(err, domain.ErrDuplicateSlug) {
			// Lost a race for the slug, try the next suffix
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create competition: %w", err)
		}
		logger.FromContext(ctx).Info(LogMsgCompetitionCreated, "competition_id", c.ID, "slug", c.Slug)
		return c, nil
	}
	return nil, domain.ErrDuplicateSlug
}

// UpdateCompetition applies the non-nil fields. The slug never changes so
// shared links keep working.
func (s *service) UpdateCompetition(ctx context.Context, id int64, req domain.UpdateCompetitionRequest) (*domain.Competition, error) {
	c, err := s.repo.GetCompetition(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.LockDate != nil {
		if req.LockDate.IsZero() {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgLockDateRequired)
		}
		c.LockDate = req.LockDate.UTC()
	}
	if req.AllowDraws != nil {
		c.AllowDraws = *req.AllowDraws
	}
	if err := s.repo.UpdateCompetition(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update competition: %w", err)
	}
	return c, nil
}

// DeleteCompetition removes the competition with its games, props, leagues and picks
func (s *service) DeleteCompetition(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCompetition(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCompetitionDeleted, "competition_id", id)
	return nil
}

func (s *service) CreateTeam(ctx context.Context, req domain.CreateTeamRequest) (*domain.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	t := &domain.Team{Name: name}
	if err := s.repo.CreateTeam(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return t, nil
}

// DeleteTeam removes the team and every game it plays in
func (s *service) DeleteTeam(ctx context.Context, id int64) error {
	return s.repo.DeleteTeam(ctx, id)
}

// UploadTeamLogo stores the image and points the team at its public URL
func (s *service) UploadTeamLogo(ctx context.Context, id int64, contentType string, body io.Reader) (*domain.Team, error) {
	ext, ok := LogoContentTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgLogoContentType)
	}
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d/%s-%s%s", LogoKeyPrefix, team.ID, slug.Make(team.Name), uuid.NewString()[:8], ext)
	url, err := s.logos.Put(ctx, key, contentType, body)
	if err != nil {
		if errors.Is(err, domain.ErrStorageDisabled) {
			return nil, err
		}
		logger.FromContext(ctx).Error(LogMsgLogoUploadFailed, "team_id", id, "error", err)
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}
	if err := s.repo.UpdateTeamLogo(ctx, id, url); err != nil {
		return nil, fmt.Errorf("failed to update team logo: %w", err)
	}
	team.LogoURL = &url
	return team, nil
}

func (s *service) CreateGame(ctx context.Context, req domain.CreateGameRequest) (*domain.Game, error) {
	if req.TeamAID == req.TeamBID {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgSameTeams)
	}
	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgStartTimeRequired)
	}
	if _, err := s.repo.GetCompetition(ctx, req.CompetitionID); err != nil {
		return nil, err
	}
	for _, teamID := range []int64{req.TeamAID, req.TeamBID} {
		if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	g := &domain.Game{
		CompetitionID: req.CompetitionID,
		TeamAID:       req.TeamAID,
		TeamBID:       req.TeamBID,
		StartTime:     req.StartTime.UTC(),
		Stage:         trimmedOrNil(req.Stage),
	}
	if err := s.repo.CreateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return g, nil
}

func (s *service) DeleteGame(ctx context.Context, id int64) error {
	return s.repo.DeleteGame(ctx, id)
}

func (s *service) CreateProp(ctx context.Context, req domain.CreatePropRequest) (*domain.PropPrediction, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgQuestionRequired)
	}
	if req.LockDate.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgLockDateRequired)
	}
	if _, err := s.repo.GetCompetition(ctx, req.CompetitionID); err != nil {
		return nil, err
	}
	p := &domain.PropPrediction{
		CompetitionID: req.CompetitionID,
		Question:      question,
		LockDate:      req.LockDate.UTC(),
	}
	if err := s.repo.CreateProp(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create prop: %w", err)
	}
	return p, nil
}

func (s *service) DeleteProp(ctx context.Context, id int64) error {
	return s.repo.DeleteProp(ctx, id)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
