package ranking

import (
	"fmt"
	"strings"
)

// Points awarded per factor by the partner matcher. Skill points accumulate
// per matched domain and are deliberately uncapped.
const (
	SkillMatchPoints = 100
	TimeMatchPoints  = 50
	FlexibleBonus    = 10
	TeamMatchPoints  = 30
	BioBonus         = 5
)

// Criteria is a searcher's effective matching criteria: the expanded
// target-skill set plus lowercased study-time and team preferences. Empty
// StudyTime or TeamPref disables that factor.
type Criteria struct {
	targetSkills map[string]bool
	studyTime    string
	teamPref     string
}

// NewCriteria builds matching criteria from expanded search terms and the
// effective study-time and team preferences.
func NewCriteria(terms []string, studyTime, teamPref string) Criteria {
	skills := make(map[string]bool, len(terms))
	for _, t := range terms {
		skills[strings.ToLower(t)] = true
	}
	return Criteria{
		targetSkills: skills,
		studyTime:    strings.ToLower(studyTime),
		teamPref:     strings.ToLower(teamPref),
	}
}

// Score rates one candidate against the criteria and returns the total
// together with the reason strings shown to the client. The searcher being
// "flexible" earns a small bonus for any candidate with a study time set;
// that bonus carries no reason string.
func (c Criteria) Score(domains []string, studyTime, teamPref, bio string) (int, []string) {
	score := 0
	reasons := []string{}

	// Distinct matched skills; a domain listed twice counts once.
	matched := make(map[string]bool)
	for _, d := range domains {
		clean := strings.ToLower(d)
		if c.targetSkills[clean] {
			matched[clean] = true
		}
	}
	matches := len(matched)
	if matches > 0 {
		score += matches * SkillMatchPoints
		reasons = append(reasons, fmt.Sprintf("%d Skill Match(es)", matches))
	}

	if c.studyTime != "" && studyTime != "" {
		switch {
		case strings.EqualFold(studyTime, c.studyTime):
			score += TimeMatchPoints
			reasons = append(reasons, "Time Match")
		case c.studyTime == "flexible":
			score += FlexibleBonus
		}
	}

	if c.teamPref != "" && teamPref != "" && strings.EqualFold(teamPref, c.teamPref) {
		score += TeamMatchPoints
		reasons = append(reasons, capitalize(c.teamPref)+" Match")
	}

	if bio != "" {
		score += BioBonus
		reasons = append(reasons, "Has Bio")
	}

	return score, reasons
}

// capitalize upper-cases the first byte and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
