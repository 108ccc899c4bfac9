package league

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/repository/memory"
)

type nopProfiles struct{}

func (nopProfiles) Remember(context.Context, uuid.UUID, string) error { return nil }

func newTestService(t *testing.T) (*service, *memory.Store, domain.Competition, *[]event.Event) {
	t.Helper()
	store := memory.NewStore()
	comp := domain.Competition{Name: "Cup", Slug: "cup", LockDate: time.Now()}
	require.NoError(t, store.CreateCompetition(context.Background(), &comp))

	var joined []event.Event
	bus := event.NewMemoryBus()
	bus.Subscribe(event.LeagueJoined, func(ctx context.Context, e event.Event) error {
		joined = append(joined, e)
		return nil
	})
	svc := NewService(store, store, nopProfiles{}, bus).(*service)
	return svc, store, comp, &joined
}

func TestCreateLeague_AdminIsMember(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	admin := domain.Participant{ID: uuid.New(), DisplayName: "Ana"}

	l, err := svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: " Office ", CompetitionID: comp.ID})
	require.NoError(t, err)
	assert.Equal(t, "Office", l.Name)
	assert.Len(t, l.InviteCode, domain.InviteCodeLength)

	members, err := svc.ListMembers(ctx, admin.ID, l.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.True(t, members[0].IsAdmin)
}

func TestCreateLeague_Errors(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	admin := domain.Participant{ID: uuid.New()}

	_, err := svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: "", CompetitionID: comp.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: "X", CompetitionID: 9999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateLeague_RetriesOnCodeCollision(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	codes := []string{"SAMECODE", "SAMECODE", "FRESHONE"}
	svc.newCode = func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}

	first, err := svc.CreateLeague(ctx, domain.Participant{ID: uuid.New()}, domain.CreateLeagueRequest{Name: "A", CompetitionID: comp.ID})
	require.NoError(t, err)
	second, err := svc.CreateLeague(ctx, domain.Participant{ID: uuid.New()}, domain.CreateLeagueRequest{Name: "B", CompetitionID: comp.ID})
	require.NoError(t, err)

	assert.Equal(t, "SAMECODE", first.InviteCode)
	assert.Equal(t, "FRESHONE", second.InviteCode)
}

func TestCreateLeague_GivesUpAfterMaxAttempts(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	svc.newCode = func() (string, error) { return "SAMECODE", nil }

	_, err := svc.CreateLeague(ctx, domain.Participant{ID: uuid.New()}, domain.CreateLeagueRequest{Name: "A", CompetitionID: comp.ID})
	require.NoError(t, err)
	_, err = svc.CreateLeague(ctx, domain.Participant{ID: uuid.New()}, domain.CreateLeagueRequest{Name: "B", CompetitionID: comp.ID})
	assert.ErrorIs(t, err, domain.ErrInviteCodeExhausted)
}

func TestJoinLeague_IsIdempotent(t *testing.T) {
	svc, _, comp, joined := newTestService(t)
	ctx := context.Background()
	admin := domain.Participant{ID: uuid.New()}
	l, err := svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: "Office", CompetitionID: comp.ID})
	require.NoError(t, err)

	who := domain.Participant{ID: uuid.New()}
	lowercase := domain.JoinLeagueRequest{InviteCode: strings.ToLower(l.InviteCode)}
	got, err := svc.JoinLeague(ctx, who, lowercase)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = svc.JoinLeague(ctx, who, domain.JoinLeagueRequest{InviteCode: l.InviteCode})
	require.NoError(t, err)

	members, err := svc.ListMembers(ctx, who.ID, l.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Len(t, *joined, 1)
}

func TestJoinLeague_Errors(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	who := domain.Participant{ID: uuid.New()}

	_, err := svc.JoinLeague(ctx, who, domain.JoinLeagueRequest{InviteCode: "SHORT"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.JoinLeague(ctx, who, domain.JoinLeagueRequest{InviteCode: "NOSUCHCD"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLeague_MembersOnly(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	admin := domain.Participant{ID: uuid.New()}
	l, err := svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: "Office", CompetitionID: comp.ID})
	require.NoError(t, err)

	_, err = svc.GetLeague(ctx, admin.ID, l.ID)
	assert.NoError(t, err)

	_, err = svc.GetLeague(ctx, uuid.New(), l.ID)
	assert.ErrorIs(t, err, domain.ErrNotLeagueMember)

	_, err = svc.GetLeague(ctx, admin.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveLeague(t *testing.T) {
	svc, _, comp, _ := newTestService(t)
	ctx := context.Background()
	admin := domain.Participant{ID: uuid.New()}
	l, err := svc.CreateLeague(ctx, admin, domain.CreateLeagueRequest{Name: "Office", CompetitionID: comp.ID})
	require.NoError(t, err)
	who := domain.Participant{ID: uuid.New()}
	_, err = svc.JoinLeague(ctx, who, domain.JoinLeagueRequest{InviteCode: l.InviteCode})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.LeaveLeague(ctx, admin.ID, l.ID), domain.ErrAdminCannotLeave)

	require.NoError(t, svc.LeaveLeague(ctx, who.ID, l.ID))
	assert.ErrorIs(t, svc.LeaveLeague(ctx, who.ID, l.ID), domain.ErrNotLeagueMember)

	mine, err := svc.ListMyLeagues(ctx, who.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestRandomCode_RejectsBiasedBytes(t *testing.T) {
	// 256 % 3 == 1, so byte 255 would favour "A" and must be skipped
	src := bytes.NewReader([]byte{255, 0, 1, 255, 2, 4, 5, 9, 9, 9})

	code, err := randomCode(src, "ABC", 4)
	require.NoError(t, err)
	assert.Equal(t, "ABCB", code)
}

func TestRandomCode_ShortReader(t *testing.T) {
	_, err := randomCode(bytes.NewReader([]byte{255, 255}), "ABC", 2)
	assert.Error(t, err)
}

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		require.Len(t, code, domain.InviteCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(InviteCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)
}
