// Package notifier owns the periodic job-digest emails: four fixed cadences,
// each tick scoring the live feed for every opted-in user and mailing the top
// matches that were not sent before.
package notifier

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"jobskills/internal/domain/user"
	"jobskills/internal/infrastructure/feed"
	"jobskills/internal/infrastructure/mail"
	"jobskills/internal/usecase/jobs"
)

const (
	digestLimit = 10

	// Per-user budget for one feed fetch plus one mail dispatch; a stuck
	// upstream must not stall the rest of the tick.
	perUserTimeout = time.Minute
)

var cadenceSpecs = map[user.Cadence]string{
	user.CadenceEveryMinute: "* * * * *",
	user.CadenceHourly:      "0 * * * *",
	user.CadenceDaily:       "0 9 * * *",
	user.CadenceWeekly:      "0 9 * * 1",
}

// Scheduler is an explicit service owning its timers, so tests and shutdown
// can start and stop it deterministically instead of relying on process-wide
// side effects.
type Scheduler struct {
	users  user.Repository
	feed   feed.Source
	mailer mail.Sender
	logger *log.Logger

	// OnDigestSent, when set, is invoked after each successful dispatch;
	// the websocket hub uses it to nudge open dashboards.
	OnDigestSent func(email string, jobCount int)

	cron *cron.Cron
}

func New(users user.Repository, src feed.Source, mailer mail.Sender, logger *log.Logger) *Scheduler {
	return &Scheduler{
		users:  users,
		feed:   src,
		mailer: mailer,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start registers the four cadence entries and launches the timers. The
// hourly/daily/weekly ticks select users by stored preference in the query;
// the every-minute tick fetches all opted-in users and re-checks the
// preference in code. The asymmetry is inherited behavior and kept on
// purpose: collapsing it into the query would change what the tick observes.
func (s *Scheduler) Start() error {
	for cadence, spec := range cadenceSpecs {
		cadence := cadence
		if _, err := s.cron.AddFunc(spec, func() { s.RunTick(context.Background(), cadence) }); err != nil {
			return fmt.Errorf("register %s schedule: %w", cadence, err)
		}
	}
	s.cron.Start()
	if s.logger != nil {
		s.logger.Printf("[Scheduler] email scheduler started")
	}
	return nil
}

// Stop halts the timers and waits for any tick in flight.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	if s.logger != nil {
		s.logger.Printf("[Scheduler] email scheduler stopped")
	}
}

// RunTick processes one cadence firing: select the matching users, then mail
// each in sequence. One user's failure is logged and never aborts the rest.
func (s *Scheduler) RunTick(ctx context.Context, cadence user.Cadence) {
	queryCadence := cadence
	if cadence == user.CadenceEveryMinute {
		queryCadence = ""
	}

	users, err := s.users.ListNotifiable(ctx, queryCadence)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Scheduler] %s tick: user query failed: %v", cadence, err)
		}
		return
	}

	for _, u := range users {
		if cadence == user.CadenceEveryMinute && u.Settings.Frequency != user.CadenceEveryMinute {
			continue
		}

		userCtx, cancel := context.WithTimeout(ctx, perUserTimeout)
		err := s.sendDigest(userCtx, u)
		cancel()
		if err != nil && s.logger != nil {
			s.logger.Printf("[Scheduler] digest failed for %s: %v", u.Email, err)
		}
	}
}

// sendDigest runs the per-user pipeline: fetch, score, dedupe, drop
// already-sent keys, truncate to the top ten, mail, then record the sent
// keys. The ledger is written after the dispatch attempt and never rolled
// back, so delivery is at-most-once per job key, not exactly-once.
func (s *Scheduler) sendDigest(ctx context.Context, u user.User) error {
	if len(u.Skills) == 0 {
		return nil
	}

	postings, err := s.feed.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	scored := jobs.ScoreAll(postings, u.Skills)

	fresh := make([]jobs.ScoredPosting, 0, len(scored))
	seen := make(map[string]bool, len(scored))
	sent := make(map[string]bool, len(u.SentJobKeys))
	for _, k := range u.SentJobKeys {
		sent[k] = true
	}

	for _, sp := range scored {
		if sp.MatchScore <= 0 {
			continue
		}
		key := sp.Key()
		if seen[key] || sent[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, sp)
	}

	if len(fresh) > digestLimit {
		fresh = fresh[:digestLimit]
	}
	if len(fresh) == 0 {
		return nil
	}

	html, err := renderDigest(fresh)
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}
	if err := s.mailer.SendHTML(ctx, u.Email, digestSubject, html); err != nil {
		return fmt.Errorf("dispatch digest: %w", err)
	}

	keys := make([]string, len(fresh))
	for i, sp := range fresh {
		keys[i] = sp.Key()
	}
	if err := s.users.AppendSentJobKeys(ctx, u.ID, keys); err != nil {
		return fmt.Errorf("record sent jobs: %w", err)
	}

	if s.OnDigestSent != nil {
		s.OnDigestSent(u.Email, len(fresh))
	}
	return nil
}
