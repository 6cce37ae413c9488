package domain

// StudyTime values accepted as search overrides. Stored profiles may carry
// free text; overrides are restricted to the enumerated set.
const (
	StudyTimeMorning   = "morning"
	StudyTimeAfternoon = "afternoon"
	StudyTimeEvening   = "evening"
	StudyTimeNight     = "night"
	StudyTimeFlexible  = "flexible"
)

// TeamPref values accepted as search overrides.
const (
	TeamPrefSolo = "solo"
	TeamPrefTeam = "team"
)

// ValidStudyTime reports whether s names an enumerated study-time value.
func ValidStudyTime(s string) bool {
	switch s {
	case StudyTimeMorning, StudyTimeAfternoon, StudyTimeEvening, StudyTimeNight, StudyTimeFlexible:
		return true
	}
	return false
}

// ValidTeamPref reports whether s names an enumerated team-preference value.
func ValidTeamPref(s string) bool {
	return s == TeamPrefSolo || s == TeamPrefTeam
}

// User is a full user record as stored. Owned by the user-management
// subsystem; the match engine reads it and never mutates it.
type User struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Username      string   `json:"username"`
	Password      string   `json:"password,omitempty"`
	AvatarID      string   `json:"avatarId"`
	Bio           string   `json:"bio,omitempty"`
	Domains       []string `json:"domains"`
	LearningStyle string   `json:"learningStyle,omitempty"`
	StudyTime     string   `json:"studyTime,omitempty"`
	TeamPref      string   `json:"teamPref,omitempty"`
}

// Candidate is a user record with sensitive fields (password, email)
// projected out, as returned by partner matching.
type Candidate struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Username      string   `json:"username"`
	AvatarID      string   `json:"avatarId"`
	Bio           string   `json:"bio,omitempty"`
	Domains       []string `json:"domains"`
	LearningStyle string   `json:"learningStyle,omitempty"`
	StudyTime     string   `json:"studyTime,omitempty"`
	TeamPref      string   `json:"teamPref,omitempty"`
}

// Author is the display metadata reattached to recommended posts.
type Author struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	AvatarID string `json:"avatarId"`
}

// UnknownAuthor is the fallback when a post's author record is missing.
func UnknownAuthor(id string) Author {
	return Author{ID: id, Name: "Unknown User", AvatarID: "0"}
}
