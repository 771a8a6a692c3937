package notifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"jobskills/internal/domain/job"
	"jobskills/internal/domain/user"
)

type memRepo struct {
	users     map[string]user.User
	listErr   error
	appendErr error
}

func newMemRepo(seed ...user.User) *memRepo {
	m := &memRepo{users: map[string]user.User{}}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *memRepo) Create(_ context.Context, u user.User) error { m.users[u.ID] = u; return nil }

func (m *memRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memRepo) Update(_ context.Context, u user.User) error { m.users[u.ID] = u; return nil }
func (m *memRepo) Delete(_ context.Context, id string) error   { delete(m.users, id); return nil }

func (m *memRepo) ListNotifiable(_ context.Context, cadence user.Cadence) ([]user.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []user.User
	for _, u := range m.users {
		if !u.Settings.EmailNotif {
			continue
		}
		if cadence != "" && u.Settings.Frequency != cadence {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memRepo) AppendSentJobKeys(_ context.Context, id string, keys []string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	have := map[string]bool{}
	for _, k := range u.SentJobKeys {
		have[k] = true
	}
	for _, k := range keys {
		if !have[k] {
			u.SentJobKeys = append(u.SentJobKeys, k)
		}
	}
	m.users[id] = u
	return nil
}

type stubFeed struct {
	postings []job.Posting
	err      error
}

func (s stubFeed) Fetch(context.Context) ([]job.Posting, error) { return s.postings, s.err }

type recordingMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	html    string
}

func (m *recordingMailer) SendText(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: body})
	return nil
}

func (m *recordingMailer) SendHTML(_ context.Context, to, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

func notifiableUser(id string, cadence user.Cadence, skills ...string) user.User {
	return user.User{
		ID:     id,
		Email:  id + "@example.com",
		Skills: skills,
		Settings: user.Settings{
			EmailNotif: true,
			Frequency:  cadence,
		},
	}
}

func TestSendDigest_DeduplicatesByTitleCompany(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "go"))
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{
		{Title: "Go Dev", Company: "Acme", Description: "go"},
		{Title: "Go Dev", Company: "Acme", Description: "go but reposted"},
	}}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.sent))
	}
	if got := strings.Count(mailer.sent[0].html, "Go Dev"); got != 1 {
		t.Fatalf("duplicate posting leaked into digest (%d occurrences)", got)
	}
}

func TestSendDigest_LedgerSuppressesRepeats(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "go"))
	mailer := &recordingMailer{}
	feed := stubFeed{postings: []job.Posting{
		{Title: "Go Dev", Company: "Acme", Description: "go"},
		{Title: "Backend Eng", Company: "Beta", Description: "go"},
	}}
	s := New(repo, feed, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)
	if len(mailer.sent) != 1 {
		t.Fatalf("first tick: expected one mail, got %d", len(mailer.sent))
	}

	u, _ := repo.GetByID(context.Background(), "u1")
	for _, want := range []string{"Go Dev-Acme", "Backend Eng-Beta"} {
		found := false
		for _, k := range u.SentJobKeys {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("ledger missing key %q: %v", want, u.SentJobKeys)
		}
	}

	// Second tick over an unchanged feed: everything is already sent.
	s.RunTick(context.Background(), user.CadenceDaily)
	if len(mailer.sent) != 1 {
		t.Fatalf("second tick must not send, got %d mails", len(mailer.sent))
	}
}

func TestSendDigest_TruncatesToTopTen(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "go"))
	mailer := &recordingMailer{}

	var postings []job.Posting
	for i := 0; i < 25; i++ {
		postings = append(postings, job.Posting{
			Title:       fmt.Sprintf("Go Role %02d", i),
			Company:     fmt.Sprintf("Company %02d", i),
			Description: "go",
		})
	}
	s := New(repo, stubFeed{postings: postings}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)

	u, _ := repo.GetByID(context.Background(), "u1")
	if len(u.SentJobKeys) != 10 {
		t.Fatalf("expected 10 ledger entries, got %d", len(u.SentJobKeys))
	}
}

func TestSendDigest_SkipsUserWithoutSkills(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily))
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{{Title: "Any", Company: "Co", Description: "go"}}}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)

	if len(mailer.sent) != 0 {
		t.Fatalf("skill-less user must be skipped, got %d mails", len(mailer.sent))
	}
}

func TestSendDigest_NoMatchesNoLedgerMutation(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "cobol"))
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{{Title: "Painter", Company: "Co", Description: "no tech"}}}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)

	if len(mailer.sent) != 0 {
		t.Fatalf("zero-score feed must not mail, got %d", len(mailer.sent))
	}
	u, _ := repo.GetByID(context.Background(), "u1")
	if len(u.SentJobKeys) != 0 {
		t.Fatalf("ledger must stay untouched, got %v", u.SentJobKeys)
	}
}

func TestRunTick_FailureIsolatedPerUser(t *testing.T) {
	broken := notifiableUser("u1", user.CadenceDaily, "go")
	broken.Email = "" // provokes a dispatch failure for this user only
	healthy := notifiableUser("u2", user.CadenceDaily, "go")

	repo := newMemRepo(broken, healthy)
	mailer := &recordingMailer{}
	feed := stubFeed{postings: []job.Posting{{Title: "Go Dev", Company: "Acme", Description: "go"}}}

	s := New(repo, feed, mailer, nil)
	// Fail only the empty recipient.
	s.mailer = failFor{inner: mailer, failTo: ""}

	s.RunTick(context.Background(), user.CadenceDaily)

	if len(mailer.sent) != 1 || mailer.sent[0].to != "u2@example.com" {
		t.Fatalf("healthy user must still be mailed, got %+v", mailer.sent)
	}
}

type failFor struct {
	inner  *recordingMailer
	failTo string
}

func (f failFor) SendText(ctx context.Context, to, subject, body string) error {
	if to == f.failTo {
		return errors.New("smtp rejected")
	}
	return f.inner.SendText(ctx, to, subject, body)
}

func (f failFor) SendHTML(ctx context.Context, to, subject, html string) error {
	if to == f.failTo {
		return errors.New("smtp rejected")
	}
	return f.inner.SendHTML(ctx, to, subject, html)
}

func TestRunTick_EveryMinuteRechecksPreference(t *testing.T) {
	minute := notifiableUser("u1", user.CadenceEveryMinute, "go")
	daily := notifiableUser("u2", user.CadenceDaily, "go")

	repo := newMemRepo(minute, daily)
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{{Title: "Go Dev", Company: "Acme", Description: "go"}}}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceEveryMinute)

	if len(mailer.sent) != 1 || mailer.sent[0].to != "u1@example.com" {
		t.Fatalf("only the every-minute user may be mailed, got %+v", mailer.sent)
	}
}

func TestRunTick_NotifiesHookAfterSend(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "go"))
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{{Title: "Go Dev", Company: "Acme", Description: "go"}}}, mailer, nil)

	var gotEmail string
	var gotCount int
	s.OnDigestSent = func(email string, count int) {
		gotEmail = email
		gotCount = count
	}

	s.RunTick(context.Background(), user.CadenceDaily)

	if gotEmail != "u1@example.com" || gotCount != 1 {
		t.Fatalf("hook not invoked correctly: %q %d", gotEmail, gotCount)
	}
}

func TestSendDigest_RanksByScore(t *testing.T) {
	repo := newMemRepo(notifiableUser("u1", user.CadenceDaily, "react", "node"))
	mailer := &recordingMailer{}
	s := New(repo, stubFeed{postings: []job.Posting{
		{Title: "Half Match", Company: "A", Description: "react only"},
		{Title: "Full Match", Company: "B", Description: "react and node"},
	}}, mailer, nil)

	s.RunTick(context.Background(), user.CadenceDaily)

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.sent))
	}
	html := mailer.sent[0].html
	if strings.Index(html, "Full Match") > strings.Index(html, "Half Match") {
		t.Fatal("digest must list the higher score first")
	}
}
