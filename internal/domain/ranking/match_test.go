package ranking

import (
	"testing"

	"github.com/studymate-labs/matchengine/internal/domain/knowledge"
)

func criteriaFor(queries []string, studyTime, teamPref string) Criteria {
	return NewCriteria(knowledge.ExpandSearchTerms(queries), studyTime, teamPref)
}

func TestScore_SkillMatches(t *testing.T) {
	c := criteriaFor([]string{"web"}, "", "")
	score, reasons := c.Score([]string{"react", "node", "blender"}, "", "", "")
	if score != 2*SkillMatchPoints {
		t.Errorf("score = %d, want %d", score, 2*SkillMatchPoints)
	}
	if len(reasons) != 1 || reasons[0] != "2 Skill Match(es)" {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestScore_SkillMatchesDeduplicated(t *testing.T) {
	c := criteriaFor([]string{"web"}, "", "")
	score, _ := c.Score([]string{"react", "React", "REACT"}, "", "", "")
	if score != SkillMatchPoints {
		t.Errorf("score = %d, want single %d", score, SkillMatchPoints)
	}
}

func TestScore_ReverseSkillLookup(t *testing.T) {
	// Searching "react" expands to include "web", so a candidate listing
	// only the broad domain still matches.
	c := criteriaFor([]string{"react"}, "", "")
	score, _ := c.Score([]string{"web"}, "", "", "")
	if score != SkillMatchPoints {
		t.Errorf("score = %d, want %d", score, SkillMatchPoints)
	}
}

func TestScore_TimeMatch_CaseInsensitive(t *testing.T) {
	c := criteriaFor(nil, "Night", "")
	score, reasons := c.Score(nil, "night", "", "")
	if score != TimeMatchPoints {
		t.Errorf("score = %d, want %d", score, TimeMatchPoints)
	}
	if len(reasons) != 1 || reasons[0] != "Time Match" {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestScore_FlexibleBonus_NoReason(t *testing.T) {
	c := criteriaFor(nil, "flexible", "")
	score, reasons := c.Score(nil, "morning", "", "")
	if score != FlexibleBonus {
		t.Errorf("score = %d, want %d", score, FlexibleBonus)
	}
	if len(reasons) != 0 {
		t.Errorf("flexible bonus must not add a reason, got %v", reasons)
	}
}

func TestScore_FlexibleBonus_RequiresCandidateTime(t *testing.T) {
	c := criteriaFor(nil, "flexible", "")
	score, _ := c.Score(nil, "", "", "")
	if score != 0 {
		t.Errorf("score = %d, want 0 when candidate has no study time", score)
	}
}

func TestScore_TeamMatch_CapitalizedReason(t *testing.T) {
	c := criteriaFor(nil, "", "team")
	score, reasons := c.Score(nil, "", "Team", "")
	if score != TeamMatchPoints {
		t.Errorf("score = %d, want %d", score, TeamMatchPoints)
	}
	if len(reasons) != 1 || reasons[0] != "Team Match" {
		t.Errorf("reasons = %v, want [Team Match]", reasons)
	}
}

func TestScore_SoloMatchReason(t *testing.T) {
	c := criteriaFor(nil, "", "SOLO")
	_, reasons := c.Score(nil, "", "solo", "")
	if len(reasons) != 1 || reasons[0] != "Solo Match" {
		t.Errorf("reasons = %v, want [Solo Match]", reasons)
	}
}

func TestScore_BioBonus(t *testing.T) {
	c := criteriaFor(nil, "", "")
	score, reasons := c.Score(nil, "", "", "I like trains.")
	if score != BioBonus {
		t.Errorf("score = %d, want %d", score, BioBonus)
	}
	if len(reasons) != 1 || reasons[0] != "Has Bio" {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestScore_EmptyCriteriaDisableFactors(t *testing.T) {
	c := criteriaFor(nil, "", "")
	score, reasons := c.Score([]string{"react"}, "night", "team", "")
	if score != 0 {
		t.Errorf("score = %d, want 0 with empty criteria", score)
	}
	if len(reasons) != 0 {
		t.Errorf("reasons = %v, want none", reasons)
	}
}

func TestScore_CombinedScenario(t *testing.T) {
	// Searcher: stored Night/Team, no overrides. Candidate: night/team.
	c := criteriaFor(nil, "night", "team")
	score, reasons := c.Score(nil, "night", "team", "")
	if score < TimeMatchPoints+TeamMatchPoints {
		t.Errorf("score = %d, want at least %d", score, TimeMatchPoints+TeamMatchPoints)
	}
	foundTime, foundTeam := false, false
	for _, reason := range reasons {
		switch reason {
		case "Time Match":
			foundTime = true
		case "Team Match":
			foundTeam = true
		}
	}
	if !foundTime || !foundTeam {
		t.Errorf("reasons = %v, want time and team entries", reasons)
	}
}
