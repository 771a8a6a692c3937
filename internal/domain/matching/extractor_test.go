package matching

import (
	"slices"
	"testing"
)

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	skills := ExtractSkills("I spent years javascripting around")
	if slices.Contains(skills, "javascript") {
		t.Fatalf("substring match must not count as a skill, got %v", skills)
	}

	skills = ExtractSkills("Strong JavaScript and React experience")
	if !slices.Contains(skills, "javascript") {
		t.Fatalf("expected javascript in %v", skills)
	}
	if !slices.Contains(skills, "react") {
		t.Fatalf("expected react in %v", skills)
	}
}

func TestExtractSkills_PunctuationAndCase(t *testing.T) {
	skills := ExtractSkills("Built SPAs with NEXT.JS, Node, and Postgres.")
	for _, want := range []string{"next.js", "node", "postgres"} {
		if !slices.Contains(skills, want) {
			t.Fatalf("expected %q in %v", want, skills)
		}
	}
}

func TestExtractSkills_MultiWordPhrase(t *testing.T) {
	skills := ExtractSkills("known for problem-solving and time management")
	if !slices.Contains(skills, "problem solving") {
		t.Fatalf("expected phrase match, got %v", skills)
	}
	if !slices.Contains(skills, "time management") {
		t.Fatalf("expected time management, got %v", skills)
	}
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	if skills := ExtractSkills(""); len(skills) != 0 {
		t.Fatalf("expected no skills for empty text, got %v", skills)
	}
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("docker docker docker")
	count := 0
	for _, s := range skills {
		if s == "docker" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected docker exactly once, got %v", skills)
	}
}

func TestExtractPersonalInfo_IndianMobile(t *testing.T) {
	info := ExtractPersonalInfo("Contact: +91 9876543210")
	if info.Phone != "+919876543210" {
		t.Fatalf("unexpected phone %q", info.Phone)
	}
}

func TestExtractPersonalInfo_USFormat(t *testing.T) {
	info := ExtractPersonalInfo("Phone: (555) 123-4567")
	if info.Phone != "5551234567" {
		t.Fatalf("unexpected phone %q", info.Phone)
	}
}

func TestExtractPersonalInfo_NoMatch(t *testing.T) {
	info := ExtractPersonalInfo("no contact details here")
	if info.Phone != "" {
		t.Fatalf("expected empty phone, got %q", info.Phone)
	}
}
