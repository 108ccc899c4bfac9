package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

func keyFor(p *domain.UserPick) pickKey {
	k := pickKey{participant: p.ParticipantID}
	if p.LeagueID != nil {
		k.league = *p.LeagueID
	}
	if p.GameID != nil {
		k.game = *p.GameID
	}
	if p.PropPredictionID != nil {
		k.prop = *p.PropPredictionID
	}
	return k
}

func copyPick(p domain.UserPick) domain.UserPick {
	p.LeagueID = ptrCopy(p.LeagueID)
	p.GameID = ptrCopy(p.GameID)
	p.PropPredictionID = ptrCopy(p.PropPredictionID)
	return p
}

func sameContext(p domain.UserPick, leagueID *uuid.UUID) bool {
	if leagueID == nil {
		return p.LeagueID == nil
	}
	return p.LeagueID != nil && *p.LeagueID == *leagueID
}

func (s *Store) UpsertPick(ctx context.Context, pick *domain.UserPick) (bool, error) {
	if (pick.GameID == nil) == (pick.PropPredictionID == nil) {
		return false, fmt.Errorf("%w: pick must reference exactly one game or prop", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	k := keyFor(pick)
	if existing, ok := s.picks[k]; ok {
		existing.Pick = pick.Pick
		existing.UpdatedAt = now
		s.picks[k] = existing
		*pick = copyPick(existing)
		return false, nil
	}

	pick.ID = s.id()
	pick.CreatedAt = now
	pick.UpdatedAt = now
	s.picks[k] = copyPick(*pick)
	return true, nil
}

func (s *Store) ListPicksForParticipant(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.UserPick{}
	for k, p := range s.picks {
		if k.participant == participantID && p.CompetitionID == competitionID && sameContext(p, leagueID) {
			out = append(out, copyPick(p))
		}
	}
	sortByID(out, func(p domain.UserPick) int64 { return p.ID })
	return out, nil
}

func (s *Store) ListPicksInContext(ctx context.Context, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.UserPick{}
	for _, p := range s.picks {
		if p.CompetitionID == competitionID && sameContext(p, leagueID) {
			out = append(out, copyPick(p))
		}
	}
	sortByID(out, func(p domain.UserPick) int64 { return p.ID })
	return out, nil
}

func (s *Store) ListPublicParticipants(ctx context.Context, competitionID int64) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[uuid.UUID]bool)
	out := []uuid.UUID{}
	for _, p := range s.picks {
		if p.CompetitionID == competitionID && p.LeagueID == nil && !seen[p.ParticipantID] {
			seen[p.ParticipantID] = true
			out = append(out, p.ParticipantID)
		}
	}
	return out, nil
}
