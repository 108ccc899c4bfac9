// Package notify posts standings and lock announcements to Discord.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/event"
	"github.com/osse101/PlayPredix_Go/internal/leaderboard"
	"github.com/osse101/PlayPredix_Go/internal/logger"
	"github.com/osse101/PlayPredix_Go/internal/metrics"
	"github.com/osse101/PlayPredix_Go/internal/worker"
)

// Enqueuer schedules background work
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// CompetitionReader resolves competition names for message titles
type CompetitionReader interface {
	GetCompetition(ctx context.Context, id int64) (*domain.Competition, error)
}

// Notifier turns grading and lock events into webhook posts. Event handlers
// only enqueue, so publishers never wait on Discord.
type Notifier struct {
	poster       Poster
	boards       leaderboard.Service
	competitions CompetitionReader
	jobs         Enqueuer
	topN         int
	title        cases.Caser
}

// New creates a notifier
func New(poster Poster, boards leaderboard.Service, competitions CompetitionReader, jobs Enqueuer, topN int) *Notifier {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Notifier{
		poster:       poster,
		boards:       boards,
		competitions: competitions,
		jobs:         jobs,
		topN:         topN,
		title:        cases.Title(language.English),
	}
}

// Register subscribes to the events that produce posts
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.ResultGraded, counted(n.handleResult))
	bus.Subscribe(event.GameLocked, counted(n.handleLocked))
	bus.Subscribe(event.PropLocked, counted(n.handleLocked))
}

// counted records handler failures by event type
func counted(h event.Handler) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		err := h(ctx, evt)
		if err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		}
		return err
	}
}

func (n *Notifier) handleResult(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ResultPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode result payload: %w", err)
	}
	n.enqueue(ctx, KindStandings, worker.JobFunc(func(ctx context.Context) error {
		return n.postStandings(ctx, payload)
	}))
	return nil
}

func (n *Notifier) handleLocked(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.LockedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode lock payload: %w", err)
	}
	n.enqueue(ctx, KindLock, worker.JobFunc(func(ctx context.Context) error {
		return n.postLock(ctx, payload)
	}))
	return nil
}

func (n *Notifier) enqueue(ctx context.Context, kind string, job worker.Job) {
	if !n.jobs.TryEnqueue(job) {
		metrics.NotificationsFailed.WithLabelValues(kind).Inc()
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "kind", kind)
	}
}

func (n *Notifier) postStandings(ctx context.Context, result domain.ResultPayload) error {
	board, err := n.boards.GetLeaderboard(ctx, leaderboard.Query{CompetitionID: result.CompetitionID, Limit: n.topN})
	if err != nil {
		return n.failed(ctx, KindStandings, fmt.Errorf("load standings: %w", err))
	}
	name := n.competitionName(ctx, result.CompetitionID)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", EmojiTrophy, name),
		Description: fmt.Sprintf("**%s**: %s", result.Label, result.Outcome),
		Color:       ColorStandings,
		Fields: []*discordgo.MessageEmbedField{{
			Name:  fmt.Sprintf("Top %d", n.topN),
			Value: FormatStandings(board.Entries),
		}},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d participants", board.TotalParticipants),
		},
	}
	return n.post(ctx, KindStandings, embed)
}

func (n *Notifier) postLock(ctx context.Context, locked domain.LockedPayload) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", EmojiLock, n.title.String(locked.Subject+" locked")),
		Description: fmt.Sprintf("Picks are closed for **%s**", locked.Label),
		Color:       ColorLock,
		Footer: &discordgo.MessageEmbedFooter{
			Text: n.competitionName(ctx, locked.CompetitionID),
		},
	}
	return n.post(ctx, KindLock, embed)
}

func (n *Notifier) post(ctx context.Context, kind string, embed *discordgo.MessageEmbed) error {
	params := &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}
	if err := n.poster.Post(ctx, params); err != nil {
		return n.failed(ctx, kind, fmt.Errorf("post %s: %w", kind, err))
	}
	metrics.NotificationsSent.WithLabelValues(kind).Inc()
	return nil
}

func (n *Notifier) failed(ctx context.Context, kind string, err error) error {
	metrics.NotificationsFailed.WithLabelValues(kind).Inc()
	logger.FromContext(ctx).Error(LogMsgNotificationFailed, "kind", kind, "error", err)
	return err
}

func (n *Notifier) competitionName(ctx context.Context, id int64) string {
	c, err := n.competitions.GetCompetition(ctx, id)
	if err != nil {
		return fmt.Sprintf("Competition %d", id)
	}
	return c.Name
}

// FormatStandings renders one line per entry, e.g. "1. Ana (7 pts)"
func FormatStandings(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return NoStandingsText
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		unit := "pts"
		if e.Score == 1 {
			unit = "pt"
		}
		fmt.Fprintf(&b, "%d. %s (%d %s)", e.Rank, e.DisplayName, e.Score, unit)
	}
	return b.String()
}
