package user

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobskills/internal/domain/matching"
	"jobskills/internal/domain/user"
	"jobskills/internal/resume"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrEmptyText       = errors.New("could not extract text from file")
	ErrInternal        = errors.New("internal error")
)

type ResumeResult struct {
	Skills       []string
	PersonalInfo matching.PersonalInfo
	User         user.User
}

type SettingsInput struct {
	EmailNotif *bool
	DarkMode   *bool
	Frequency  *string
}

type ApplyLogInput struct {
	JobTitle string
	Company  string
	URL      string
}

type Service struct {
	users  user.Repository
	logger *log.Logger

	now func() time.Time
}

func NewService(users user.Repository, logger *log.Logger) *Service {
	return &Service{users: users, logger: logger, now: time.Now}
}

// UploadResume replaces the user's detected skill set with whatever the new
// resume yields. Only the original filename is kept; the file content is
// discarded after extraction.
func (s *Service) UploadResume(ctx context.Context, userID, filename, contentType string, data []byte) (ResumeResult, error) {
	if len(data) == 0 {
		return ResumeResult{}, ErrInvalidInput
	}
	if len(data) > resume.MaxSize {
		return ResumeResult{}, ErrFileTooLarge
	}
	if !resume.Supported(contentType) {
		return ResumeResult{}, ErrUnsupportedFile
	}

	text, err := resume.ExtractText(data, contentType)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedType) {
			return ResumeResult{}, ErrUnsupportedFile
		}
		if s.logger != nil {
			s.logger.Printf("[User] resume extraction failed for %s: %v", userID, err)
		}
		return ResumeResult{}, ErrEmptyText
	}
	if strings.TrimSpace(text) == "" {
		return ResumeResult{}, ErrEmptyText
	}

	skills := matching.ExtractSkills(text)
	info := matching.ExtractPersonalInfo(text)

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ResumeResult{}, err
	}

	u.Skills = skills
	u.ResumeName = filename
	if info.Phone != "" {
		u.Phone = info.Phone
	}
	if err := s.users.Update(ctx, u); err != nil {
		return ResumeResult{}, ErrInternal
	}

	return ResumeResult{Skills: skills, PersonalInfo: info, User: u}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name, phone string) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		u.Phone = phone
	}

	if err := s.users.Update(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}
	return u, nil
}

func (s *Service) LogApplication(ctx context.Context, userID string, in ApplyLogInput) error {
	if strings.TrimSpace(in.JobTitle) == "" || strings.TrimSpace(in.Company) == "" {
		return ErrInvalidInput
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	u.ApplyLogs = append(u.ApplyLogs, user.ApplyLog{
		JobTitle: in.JobTitle,
		Company:  in.Company,
		URL:      in.URL,
		Date:     s.now().UTC(),
	})
	if err := s.users.Update(ctx, u); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) ApplyLogs(ctx context.Context, userID string) ([]user.ApplyLog, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.ApplyLogs == nil {
		return []user.ApplyLog{}, nil
	}
	return u.ApplyLogs, nil
}

func (s *Service) Current(ctx context.Context, userID string) (user.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) GetSettings(ctx context.Context, userID string) (user.Settings, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.Settings{}, err
	}

	settings := u.Settings
	if !settings.Frequency.Valid() {
		settings.Frequency = user.CadenceDaily
	}
	return settings, nil
}

// UpdateSettings merges provided fields into the stored settings; absent
// fields keep their current value.
func (s *Service) UpdateSettings(ctx context.Context, userID string, in SettingsInput) (user.Settings, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.Settings{}, err
	}

	if in.EmailNotif != nil {
		u.Settings.EmailNotif = *in.EmailNotif
	}
	if in.DarkMode != nil {
		u.Settings.DarkMode = *in.DarkMode
	}
	if in.Frequency != nil {
		cadence := user.Cadence(*in.Frequency)
		if !cadence.Valid() {
			return user.Settings{}, ErrInvalidInput
		}
		u.Settings.Frequency = cadence
	}
	if !u.Settings.Frequency.Valid() {
		u.Settings.Frequency = user.CadenceDaily
	}

	if err := s.users.Update(ctx, u); err != nil {
		return user.Settings{}, ErrInternal
	}
	return u.Settings, nil
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}
