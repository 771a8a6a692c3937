package matching

import (
	"testing"

	"jobskills/internal/domain/job"
)

func TestScore_NoSkills(t *testing.T) {
	p := job.Posting{Title: "Anything", Description: "anything at all"}
	if got := Score(p, nil); got != 0 {
		t.Fatalf("expected 0 for empty skill list, got %d", got)
	}
}

func TestScore_AllSkillsPresent(t *testing.T) {
	p := job.Posting{Title: "Backend Engineer", Description: "go and postgres and docker"}
	if got := Score(p, []string{"go", "postgres", "docker"}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScore_PartialOverlapRounds(t *testing.T) {
	p := job.Posting{Title: "Frontend Dev", Description: "react only"}
	// 1 of 3 skills -> round(33.33) = 33
	if got := Score(p, []string{"react", "vue", "angular"}); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
}

func TestScore_Monotonic(t *testing.T) {
	p := job.Posting{Title: "Platform Engineer", Description: "kubernetes, terraform and go"}

	skills := []string{"kubernetes"}
	before := Score(p, skills)
	after := Score(p, append(skills, "terraform"))
	if after < before {
		t.Fatalf("adding a matching skill lowered the score: %d -> %d", before, after)
	}
}

func TestScore_DottedSkillEscaped(t *testing.T) {
	p := job.Posting{Title: "Fullstack", Description: "we ship with next.js"}
	if got := Score(p, []string{"next.js"}); got != 100 {
		t.Fatalf("expected dotted skill to match literally, got %d", got)
	}

	p = job.Posting{Title: "Fullstack", Description: "we ship with nextajs"}
	if got := Score(p, []string{"next.js"}); got != 0 {
		t.Fatalf("dot must not act as a wildcard, got %d", got)
	}
}

func TestScore_WholeWordInHaystack(t *testing.T) {
	p := job.Posting{Title: "Dev", Description: "javascripting wizardry"}
	if got := Score(p, []string{"javascript"}); got != 0 {
		t.Fatalf("substring hit must not count, got %d", got)
	}
}

func TestScore_UsesSkillTags(t *testing.T) {
	p := job.Posting{Title: "Engineer", Skills: []string{"rust", "grpc"}}
	if got := Score(p, []string{"rust"}); got != 100 {
		t.Fatalf("expected skill tags to be scanned, got %d", got)
	}
}

func TestScore_EndToEndScenario(t *testing.T) {
	feed := []job.Posting{
		{Title: "React Dev", Description: "node and react needed"},
		{Title: "Painter", Description: "no tech"},
	}
	skills := []string{"react", "node"}

	if got := Score(feed[0], skills); got != 100 {
		t.Fatalf("React Dev expected 100, got %d", got)
	}
	if got := Score(feed[1], skills); got != 0 {
		t.Fatalf("Painter expected 0, got %d", got)
	}
}
