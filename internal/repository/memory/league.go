package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

func (s *Store) CreateLeague(ctx context.Context, league *domain.League) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitions[league.CompetitionID]; !ok {
		return domain.ErrCompetitionNotFound
	}
	for _, l := range s.leagues {
		if l.InviteCode == league.InviteCode {
			return domain.ErrInviteCodeTaken
		}
	}
	if league.ID == uuid.Nil {
		league.ID = uuid.New()
	}
	league.CreatedAt = s.now().UTC()
	s.leagues[league.ID] = *league
	s.members[memberKey{league.ID, league.AdminID}] = league.CreatedAt
	return nil
}

func (s *Store) GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leagues[id]
	if !ok {
		return nil, domain.ErrLeagueNotFound
	}
	return &l, nil
}

func (s *Store) GetLeagueByInviteCode(ctx context.Context, code string) (*domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leagues {
		if l.InviteCode == code {
			return &l, nil
		}
	}
	return nil, domain.ErrInviteCodeNotFound
}

func (s *Store) ListLeaguesForParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.League{}
	for id, l := range s.leagues {
		if _, ok := s.members[memberKey{id, participantID}]; ok || l.AdminID == participantID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) AddMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leagues[leagueID]; !ok {
		return false, domain.ErrLeagueNotFound
	}
	k := memberKey{leagueID, participantID}
	if _, ok := s.members[k]; ok {
		return false, nil
	}
	s.members[k] = s.now().UTC()
	return true, nil
}

func (s *Store) RemoveMember(ctx context.Context, leagueID, participantID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := memberKey{leagueID, participantID}
	if _, ok := s.members[k]; !ok {
		return domain.ErrNotLeagueMember
	}
	delete(s.members, k)
	return nil
}

func (s *Store) IsMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leagues[leagueID]
	if !ok {
		return false, nil
	}
	if l.AdminID == participantID {
		return true, nil
	}
	_, ok = s.members[memberKey{leagueID, participantID}]
	return ok, nil
}

func (s *Store) ListMemberIDs(ctx context.Context, leagueID uuid.UUID) ([]uuid.UUID, error) {
	members, err := s.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.ParticipantID
	}
	return ids, nil
}

func (s *Store) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]domain.LeagueMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leagues[leagueID]
	if !ok {
		return nil, domain.ErrLeagueNotFound
	}
	out := []domain.LeagueMember{}
	adminListed := false
	for k, joined := range s.members {
		if k.league != leagueID {
			continue
		}
		isAdmin := k.participant == l.AdminID
		adminListed = adminListed || isAdmin
		out = append(out, domain.LeagueMember{
			LeagueID:      leagueID,
			ParticipantID: k.participant,
			DisplayName:   s.profiles[k.participant].DisplayName,
			IsAdmin:       isAdmin,
			JoinedAt:      joined,
		})
	}
	if !adminListed {
		out = append(out, domain.LeagueMember{
			LeagueID:      leagueID,
			ParticipantID: l.AdminID,
			DisplayName:   s.profiles[l.AdminID].DisplayName,
			IsAdmin:       true,
			JoinedAt:      l.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].ParticipantID.String() < out[j].ParticipantID.String()
	})
	return out, nil
}

func (s *Store) deleteLeagueLocked(id uuid.UUID) {
	delete(s.leagues, id)
	for k := range s.members {
		if k.league == id {
			delete(s.members, k)
		}
	}
	for k := range s.picks {
		if k.league == id {
			delete(s.picks, k)
		}
	}
}

func (s *Store) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.UpdatedAt = s.now().UTC()
	s.profiles[profile.ID] = *profile
	return nil
}

func (s *Store) GetDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p.DisplayName
		}
	}
	return out, nil
}
