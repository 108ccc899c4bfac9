package memory

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

func (s *Store) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Competition, 0, len(s.competitions))
	for _, c := range s.competitions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LockDate.Equal(out[j].LockDate) {
			return out[i].LockDate.Before(out[j].LockDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetCompetition(ctx context.Context, id int64) (*domain.Competition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.competitions[id]
	if !ok {
		return nil, domain.ErrCompetitionNotFound
	}
	return &c, nil
}

func (s *Store) CreateCompetition(ctx context.Context, c *domain.Competition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.competitions {
		if existing.Slug == c.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	c.ID = s.id()
	c.CreatedAt = s.now().UTC()
	s.competitions[c.ID] = *c
	return nil
}

func (s *Store) UpdateCompetition(ctx context.Context, c *domain.Competition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.competitions[c.ID]
	if !ok {
		return domain.ErrCompetitionNotFound
	}
	c.Slug = existing.Slug
	c.CreatedAt = existing.CreatedAt
	s.competitions[c.ID] = *c
	return nil
}

func (s *Store) DeleteCompetition(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitions[id]; !ok {
		return domain.ErrCompetitionNotFound
	}
	delete(s.competitions, id)
	for gid, g := range s.games {
		if g.CompetitionID == id {
			s.deleteGameLocked(gid)
		}
	}
	for pid, p := range s.props {
		if p.CompetitionID == id {
			s.deletePropLocked(pid)
		}
	}
	for lid, l := range s.leagues {
		if l.CompetitionID == id {
			s.deleteLeagueLocked(lid)
		}
	}
	for k, p := range s.picks {
		if p.CompetitionID == id {
			delete(s.picks, k)
		}
	}
	return nil
}

func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.competitions {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	t.LogoURL = ptrCopy(t.LogoURL)
	return &t, nil
}

func (s *Store) ListTeamsForCompetition(ctx context.Context, competitionID int64) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[int64]bool)
	out := []domain.Team{}
	for _, g := range s.games {
		if g.CompetitionID != competitionID {
			continue
		}
		for _, id := range []int64{g.TeamAID, g.TeamBID} {
			if seen[id] {
				continue
			}
			seen[id] = true
			if t, ok := s.teams[id]; ok {
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateTeam(ctx context.Context, t *domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id()
	t.CreatedAt = s.now().UTC()
	s.teams[t.ID] = *t
	return nil
}

func (s *Store) UpdateTeamLogo(ctx context.Context, id int64, logoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return domain.ErrTeamNotFound
	}
	t.LogoURL = &logoURL
	s.teams[id] = t
	return nil
}

func (s *Store) DeleteTeam(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(s.teams, id)
	for gid, g := range s.games {
		if g.HasTeam(id) {
			s.deleteGameLocked(gid)
		}
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return copyGame(g), nil
}

func copyGame(g domain.Game) *domain.Game {
	g.Stage = ptrCopy(g.Stage)
	g.WinningTeamID = ptrCopy(g.WinningTeamID)
	return &g
}

func (s *Store) ListGames(ctx context.Context, competitionID int64) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Game{}
	for _, g := range s.games {
		if g.CompetitionID == competitionID {
			out = append(out, *copyGame(g))
		}
	}
	sortByID(out, func(g domain.Game) int64 { return g.ID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (s *Store) CreateGame(ctx context.Context, g *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitions[g.CompetitionID]; !ok {
		return domain.ErrCompetitionNotFound
	}
	if _, ok := s.teams[g.TeamAID]; !ok {
		return domain.ErrTeamNotFound
	}
	if _, ok := s.teams[g.TeamBID]; !ok {
		return domain.ErrTeamNotFound
	}
	g.ID = s.id()
	s.games[g.ID] = *copyGame(*g)
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return domain.ErrGameNotFound
	}
	s.deleteGameLocked(id)
	return nil
}

func (s *Store) deleteGameLocked(id int64) {
	delete(s.games, id)
	for k := range s.picks {
		if k.game == id {
			delete(s.picks, k)
		}
	}
}

func (s *Store) SetGameResult(ctx context.Context, id int64, winningTeamID *int64, isDraw bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	g.WinningTeamID = ptrCopy(winningTeamID)
	g.IsDraw = isDraw
	s.games[id] = g
	return nil
}

func (s *Store) ListGamesStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Game
	for _, g := range s.games {
		if g.StartTime.After(from) && !g.StartTime.After(to) {
			out = append(out, *copyGame(g))
		}
	}
	sortByID(out, func(g domain.Game) int64 { return g.ID })
	return out, nil
}

func (s *Store) GetProp(ctx context.Context, id int64) (*domain.PropPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.props[id]
	if !ok {
		return nil, domain.ErrPropNotFound
	}
	p.CorrectAnswer = ptrCopy(p.CorrectAnswer)
	return &p, nil
}

func (s *Store) ListProps(ctx context.Context, competitionID int64) ([]domain.PropPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.PropPrediction{}
	for _, p := range s.props {
		if p.CompetitionID == competitionID {
			p.CorrectAnswer = ptrCopy(p.CorrectAnswer)
			out = append(out, p)
		}
	}
	sortByID(out, func(p domain.PropPrediction) int64 { return p.ID })
	return out, nil
}

func (s *Store) CreateProp(ctx context.Context, p *domain.PropPrediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.competitions[p.CompetitionID]; !ok {
		return domain.ErrCompetitionNotFound
	}
	p.ID = s.id()
	stored := *p
	stored.CorrectAnswer = ptrCopy(p.CorrectAnswer)
	s.props[p.ID] = stored
	return nil
}

func (s *Store) DeleteProp(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.props[id]; !ok {
		return domain.ErrPropNotFound
	}
	s.deletePropLocked(id)
	return nil
}

func (s *Store) deletePropLocked(id int64) {
	delete(s.props, id)
	for k := range s.picks {
		if k.prop == id {
			delete(s.picks, k)
		}
	}
}

func (s *Store) SetPropAnswer(ctx context.Context, id int64, answer *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.props[id]
	if !ok {
		return domain.ErrPropNotFound
	}
	p.CorrectAnswer = ptrCopy(answer)
	s.props[id] = p
	return nil
}

func (s *Store) ListPropsLockingBetween(ctx context.Context, from, to time.Time) ([]domain.PropPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.PropPrediction
	for _, p := range s.props {
		if p.LockDate.After(from) && !p.LockDate.After(to) {
			out = append(out, p)
		}
	}
	sortByID(out, func(p domain.PropPrediction) int64 { return p.ID })
	return out, nil
}
