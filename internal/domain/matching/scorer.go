package matching

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"jobskills/internal/domain/job"
)

var (
	skillPatternMu sync.RWMutex
	skillPatterns  = make(map[string]*regexp.Regexp)
)

func skillPattern(skill string) *regexp.Regexp {
	skillPatternMu.RLock()
	re := skillPatterns[skill]
	skillPatternMu.RUnlock()
	if re != nil {
		return re
	}

	// Only the literal dot needs escaping in practice ("next.js", "asp.net");
	// anything else that fails to compile simply never matches.
	pat := `(?i)\b` + strings.ReplaceAll(skill, ".", `\.`) + `\b`
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil
	}

	skillPatternMu.Lock()
	skillPatterns[skill] = re
	skillPatternMu.Unlock()
	return re
}

// Score computes the percentage of the user's skills that appear in the
// posting, as a whole-word presence check against the concatenated title,
// description and skill tags. Zero skills scores zero. The result is a
// bag-of-words relevance signal, not a ranking model.
func Score(p job.Posting, skills []string) int {
	if len(skills) == 0 {
		return 0
	}

	hay := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Skills, " "))

	hits := 0
	for _, s := range skills {
		re := skillPattern(s)
		if re != nil && re.MatchString(hay) {
			hits++
		}
	}

	return int(math.Round(float64(hits) / float64(len(skills)) * 100))
}
