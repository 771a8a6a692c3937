package matching

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[\W_]+`)

type vocabEntry struct {
	name string
	re   *regexp.Regexp
}

// Patterns are compiled once here instead of per request; the vocabulary is
// static, so recompiling a few hundred regexps on every upload is pure waste.
var vocabEntries = compileVocabulary(Vocabulary)

func compileVocabulary(vocab []string) []vocabEntry {
	entries := make([]vocabEntry, 0, len(vocab))
	seen := make(map[string]struct{}, len(vocab))
	for _, v := range vocab {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		pat := `(?i)\b` + regexp.QuoteMeta(normalize(v)) + `\b`
		entries = append(entries, vocabEntry{name: v, re: regexp.MustCompile(pat)})
	}
	return entries
}

// normalize lowercases text and collapses every run of non-word characters
// into a single space, so "Next.JS," and "next js" match the same way.
func normalize(text string) string {
	return nonWord.ReplaceAllString(strings.ToLower(text), " ")
}

// ExtractSkills scans raw resume text for whole-word occurrences of
// vocabulary entries. The result is duplicate-free and keeps each entry's
// original spelling; order follows the vocabulary and carries no meaning.
func ExtractSkills(rawText string) []string {
	normalized := normalize(rawText)

	var found []string
	for _, e := range vocabEntries {
		if e.re.MatchString(normalized) {
			found = append(found, e.name)
		}
	}
	return found
}

// Phone patterns are tried in order and the first match wins, so the more
// specific regional formats must come before the generic digit run.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+91[\s-]?)?[789]\d{9}`),                                  // Indian mobile
	regexp.MustCompile(`(\+1[\s-]?)?\(?([0-9]{3})\)?[\s-]?([0-9]{3})[\s-]?([0-9]{4})`), // US
	regexp.MustCompile(`(\+44[\s-]?)?[0-9]{10,11}`),                                // UK
	regexp.MustCompile(`[0-9]{10,15}`),                                             // generic digit run
}

var phoneJunk = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// PersonalInfo holds contact details pulled out of resume text.
type PersonalInfo struct {
	Phone string `json:"phone"`
}

// ExtractPersonalInfo pulls a phone number out of resume text, or an empty
// string when no pattern matches.
func ExtractPersonalInfo(rawText string) PersonalInfo {
	text := strings.ToLower(rawText)
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			return PersonalInfo{Phone: phoneJunk.Replace(m)}
		}
	}
	return PersonalInfo{}
}
