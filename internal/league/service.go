package league

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// Service defines the interface for league operations
type Service interface {
	CreateLeague(ctx context.Context, admin domain.Participant, req domain.CreateLeagueRequest) (*domain.League, error)
	JoinLeague(ctx context.Context, participant domain.Participant, req domain.JoinLeagueRequest) (*domain.League, error)
	GetLeague(ctx context.Context, participantID, leagueID uuid.UUID) (*domain.League, error)
	ListMyLeagues(ctx context.Context, participantID uuid.UUID) ([]domain.League, error)
	ListMembers(ctx context.Context, participantID, leagueID uuid.UUID) ([]domain.LeagueMember, error)
	LeaveLeague(ctx context.Context, participantID, leagueID uuid.UUID) error
}

// CompetitionReader checks that a league targets a real competition
type CompetitionReader interface {
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
}

// ProfileRecorder keeps the participant's display name current
type ProfileRecorder interface {
	Remember(ctx context.Context, id uuid.UUID, name string) error
}

type service struct {
	repo         repository.League
	competitions CompetitionReader
	profiles     ProfileRecorder
	bus          event.Bus
	newCode      func() (string, error)
}

// NewService creates a new league service
func NewService(repo repository.League, competitions CompetitionReader, profiles ProfileRecorder, bus event.Bus) Service {
	return &service{
		repo:         repo,
		competitions: competitions,
		profiles:     profiles,
		bus:          bus,
		newCode:      GenerateInviteCode,
	}
}

// CreateLeague creates the league with the caller as admin and first member
func (s *service) CreateLeague(ctx context.Context, admin domain.Participant, req domain.CreateLeagueRequest) (*domain.League, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	if _, err := s.competitions.GetCompetition(ctx, req.CompetitionID); err != nil {
		return nil, err
	}

	s.remember(ctx, admin)

	for attempt := 0; attempt < MaxInviteCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invite code: %w", err)
		}
		league := &domain.League{
			ID:            uuid.New(),
			Name:          name,
			AdminID:       admin.ID,
			CompetitionID: req.CompetitionID,
			InviteCode:    code,
		}
		err = s.repo.CreateLeague(ctx, league)
		if errors.Is(err, domain.ErrInviteCodeTaken) {
			log.Debug(LogMsgInviteCodeCollision, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create league: %w", err)
		}
		log.Info(LogMsgLeagueCreated, "league_id", league.ID, "competition_id", league.CompetitionID)
		return league, nil
	}
	return nil, domain.ErrInviteCodeExhausted
}

// JoinLeague adds the caller to the league behind the invite code. Joining a
// league twice is a no-op.
func (s *service) JoinLeague(ctx context.Context, participant domain.Participant, req domain.JoinLeagueRequest) (*domain.League, error) {
	code := NormalizeInviteCode(req.InviteCode)
	if len(code) != domain.InviteCodeLength {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgInviteCodeFormat)
	}
	league, err := s.repo.GetLeagueByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	s.remember(ctx, participant)

	added, err := s.repo.AddMember(ctx, league.ID, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to join league: %w", err)
	}
	if added {
		if err := s.bus.Publish(ctx, event.NewLeagueJoinedEvent(league.ID, participant.ID)); err != nil {
			logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "type", event.LeagueJoined, "error", err)
		}
		logger.FromContext(ctx).Info(LogMsgLeagueJoined, "league_id", league.ID)
	}
	return league, nil
}

// GetLeague returns the league to its members. The invite code is only
// visible from inside.
func (s *service) GetLeague(ctx context.Context, participantID, leagueID uuid.UUID) (*domain.League, error) {
	league, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, leagueID, participantID); err != nil {
		return nil, err
	}
	return league, nil
}

func (s *service) ListMyLeagues(ctx context.Context, participantID uuid.UUID) ([]domain.League, error) {
	return s.repo.ListLeaguesForParticipant(ctx, participantID)
}

func (s *service) ListMembers(ctx context.Context, participantID, leagueID uuid.UUID) ([]domain.LeagueMember, error) {
	if _, err := s.repo.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, leagueID, participantID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, leagueID)
}

// LeaveLeague removes the caller. The admin cannot leave; their picks in the
// league are kept either way.
func (s *service) LeaveLeague(ctx context.Context, participantID, leagueID uuid.UUID) error {
	league, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	if league.AdminID == participantID {
		return domain.ErrAdminCannotLeave
	}
	if err := s.repo.RemoveMember(ctx, leagueID, participantID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgLeagueLeft, "league_id", leagueID)
	return nil
}

func (s *service) requireMember(ctx context.Context, leagueID, participantID uuid.UUID) error {
	member, err := s.repo.IsMember(ctx, leagueID, participantID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return domain.ErrNotLeagueMember
	}
	return nil
}

func (s *service) remember(ctx context.Context, p domain.Participant) {
	if err := s.profiles.Remember(ctx, p.ID, p.DisplayName); err != nil {
		logger.FromContext(ctx).Warn(LogMsgProfileSyncFailed, "error", err)
	}
}

// GenerateInviteCode returns a random code from an alphabet without
// look-alike characters
func GenerateInviteCode() (string, error) {
	return randomCode(rand.Reader, InviteCodeAlphabet, domain.InviteCodeLength)
}

// randomCode draws n characters uniformly from alphabet. Bytes at or above the
// largest multiple of len(alphabet) are rejected so no character is favoured.
func randomCode(r io.Reader, alphabet string, n int) (string, error) {
	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// NormalizeInviteCode uppercases and trims a user-typed code
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
