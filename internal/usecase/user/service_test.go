package user

import (
	"context"
	"errors"
	"testing"

	"jobskills/internal/domain/user"
)

type memRepo struct {
	users map[string]user.User
}

func newMemRepo(seed ...user.User) *memRepo {
	m := &memRepo{users: map[string]user.User{}}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *memRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

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

func (m *memRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memRepo) ListNotifiable(context.Context, user.Cadence) ([]user.User, error) {
	return nil, nil
}

func (m *memRepo) AppendSentJobKeys(_ context.Context, id string, keys []string) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.SentJobKeys = append(u.SentJobKeys, keys...)
	m.users[id] = u
	return nil
}

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }

func TestUploadResume_ReplacesSkills(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1", Skills: []string{"php"}, Phone: "123"})
	svc := NewService(repo, nil)

	res, err := svc.UploadResume(context.Background(), "u1", "cv.txt", "text/plain",
		[]byte("Senior engineer: Go, Docker and Kubernetes. Call +91 9876543210"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	want := map[string]bool{"go": true, "docker": true, "kubernetes": true}
	for _, s := range res.Skills {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("missing skills %v in %v", want, res.Skills)
	}
	if res.User.ResumeName != "cv.txt" {
		t.Fatalf("resume name not stored: %q", res.User.ResumeName)
	}
	if res.User.Phone != "+919876543210" {
		t.Fatalf("phone not updated: %q", res.User.Phone)
	}

	stored, _ := repo.GetByID(context.Background(), "u1")
	for _, s := range stored.Skills {
		if s == "php" {
			t.Fatal("old skills must be replaced, not merged")
		}
	}
}

func TestUploadResume_KeepsPhoneWhenNoneFound(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1", Phone: "555"})
	svc := NewService(repo, nil)

	res, err := svc.UploadResume(context.Background(), "u1", "cv.txt", "text/plain",
		[]byte("go developer, no contact details"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.User.Phone != "555" {
		t.Fatalf("existing phone must survive, got %q", res.User.Phone)
	}
}

func TestUploadResume_RejectsUnsupportedType(t *testing.T) {
	svc := NewService(newMemRepo(user.User{ID: "u1"}), nil)
	_, err := svc.UploadResume(context.Background(), "u1", "x.png", "image/png", []byte("x"))
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestUploadResume_RejectsEmptyText(t *testing.T) {
	svc := NewService(newMemRepo(user.User{ID: "u1"}), nil)
	_, err := svc.UploadResume(context.Background(), "u1", "x.txt", "text/plain", []byte("   \n "))
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestUpdateProfile_SkipsEmptyFields(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1", Name: "Old", Phone: "111"})
	svc := NewService(repo, nil)

	u, err := svc.UpdateProfile(context.Background(), "u1", "New", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Name != "New" || u.Phone != "111" {
		t.Fatalf("unexpected profile %+v", u)
	}
}

func TestLogApplication_AppendsImmutableEntry(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1"})
	svc := NewService(repo, nil)

	if err := svc.LogApplication(context.Background(), "u1", ApplyLogInput{JobTitle: "Dev", Company: "Acme", URL: "http://x"}); err != nil {
		t.Fatalf("log: %v", err)
	}
	if err := svc.LogApplication(context.Background(), "u1", ApplyLogInput{Company: "Acme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}

	logs, err := svc.ApplyLogs(context.Background(), "u1")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 || logs[0].JobTitle != "Dev" || logs[0].Date.IsZero() {
		t.Fatalf("unexpected logs %+v", logs)
	}
}

func TestSettings_MergeAndDefaults(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1", Settings: user.DefaultSettings()})
	svc := NewService(repo, nil)
	ctx := context.Background()

	got, err := svc.UpdateSettings(ctx, "u1", SettingsInput{DarkMode: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.DarkMode || !got.EmailNotif || got.Frequency != user.CadenceDaily {
		t.Fatalf("merge broke untouched fields: %+v", got)
	}

	got, err = svc.UpdateSettings(ctx, "u1", SettingsInput{Frequency: strPtr("1h"), EmailNotif: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Frequency != user.CadenceHourly || got.EmailNotif {
		t.Fatalf("unexpected settings %+v", got)
	}

	if _, err := svc.UpdateSettings(ctx, "u1", SettingsInput{Frequency: strPtr("fortnightly")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad cadence, got %v", err)
	}
}

func TestGetSettings_DefaultsInvalidCadence(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1", Settings: user.Settings{EmailNotif: true}})
	svc := NewService(repo, nil)

	got, err := svc.GetSettings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Frequency != user.CadenceDaily {
		t.Fatalf("expected daily default, got %q", got.Frequency)
	}
}

func TestDelete_RemovesUser(t *testing.T) {
	repo := newMemRepo(user.User{ID: "u1"})
	svc := NewService(repo, nil)

	if err := svc.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
