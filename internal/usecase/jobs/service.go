package jobs

import (
	"context"
	"errors"
	"sort"

	"jobskills/internal/domain/job"
	"jobskills/internal/domain/matching"
	"jobskills/internal/domain/user"
	"jobskills/internal/infrastructure/feed"
)

var ErrFeedUnavailable = errors.New("failed to fetch jobs")

// ScoredPosting is a feed posting annotated with the caller's match score.
type ScoredPosting struct {
	job.Posting
	MatchScore int `json:"matchScore"`
}

type Service struct {
	users user.Repository
	feed  feed.Source
}

func NewService(users user.Repository, src feed.Source) *Service {
	return &Service{users: users, feed: src}
}

// Matches scores the live feed against the user's skill set and returns all
// postings sorted by score, highest first. Equal scores keep feed order.
func (s *Service) Matches(ctx context.Context, userID string) ([]string, []ScoredPosting, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}

	postings, err := s.feed.Fetch(ctx)
	if err != nil {
		return nil, nil, ErrFeedUnavailable
	}

	scored := ScoreAll(postings, skills)
	return skills, scored, nil
}

// ScoreAll annotates and stably sorts postings by descending score.
func ScoreAll(postings []job.Posting, skills []string) []ScoredPosting {
	scored := make([]ScoredPosting, 0, len(postings))
	for _, p := range postings {
		scored = append(scored, ScoredPosting{Posting: p, MatchScore: matching.Score(p, skills)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	return scored
}
