package match

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/studymate-labs/matchengine/internal/domain"
)

// --- Mocks ---

type mockUsers struct {
	user  domain.User
	err   error
	calls int
}

func (m *mockUsers) Get(_ context.Context, _ string) (domain.User, error) {
	m.calls++
	return m.user, m.err
}

type mockCandidates struct {
	candidates  []domain.Candidate
	err         error
	calls       int
	lastExclude string
}

func (m *mockCandidates) ListExcept(_ context.Context, excludeID string) ([]domain.Candidate, error) {
	m.calls++
	m.lastExclude = excludeID
	return m.candidates, m.err
}

// --- Tests ---

func TestFindPartners_InvalidID_NoStorageCalls(t *testing.T) {
	users := &mockUsers{}
	cands := &mockCandidates{}
	svc := New(users, cands)

	_, err := svc.FindPartners(context.Background(), "", Overrides{})
	if !errors.Is(err, domain.ErrInvalidUserID) {
		t.Fatalf("err = %v, want ErrInvalidUserID", err)
	}
	if users.calls != 0 || cands.calls != 0 {
		t.Error("storage must not be touched on invalid id")
	}
}

func TestFindPartners_SearcherNotFound(t *testing.T) {
	users := &mockUsers{err: domain.ErrUserNotFound}
	svc := New(users, &mockCandidates{})

	_, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestFindPartners_StorageFailureIsQueryFailed(t *testing.T) {
	users := &mockUsers{user: domain.User{StudyTime: "night"}}
	cands := &mockCandidates{err: errors.New("connection reset")}
	svc := New(users, cands)

	_, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if !errors.Is(err, domain.ErrQueryFailed) {
		t.Fatalf("err = %v, want ErrQueryFailed", err)
	}
}

func TestFindPartners_ExcludesSearcher(t *testing.T) {
	searcherID := domain.NewID()
	users := &mockUsers{user: domain.User{}}
	cands := &mockCandidates{}
	svc := New(users, cands)

	if _, err := svc.FindPartners(context.Background(), searcherID, Overrides{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cands.lastExclude != searcherID {
		t.Errorf("exclude = %q, want searcher id", cands.lastExclude)
	}
}

func TestFindPartners_StoredProfileScenario(t *testing.T) {
	// Searcher stored Night/Team with no overrides; candidate night/team
	// must collect the time and team factors.
	users := &mockUsers{user: domain.User{StudyTime: "Night", TeamPref: "Team"}}
	cands := &mockCandidates{candidates: []domain.Candidate{
		{ID: "c1", Name: "Mira", StudyTime: "night", TeamPref: "team"},
	}}
	svc := New(users, cands)

	got, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Score < 80 {
		t.Errorf("score = %d, want at least 80 (time + team)", got[0].Score)
	}
	foundTime, foundTeam := false, false
	for _, reason := range got[0].Reasons {
		switch reason {
		case "Time Match":
			foundTime = true
		case "Team Match":
			foundTeam = true
		}
	}
	if !foundTime || !foundTeam {
		t.Errorf("reasons = %v, want time and team entries", got[0].Reasons)
	}
}

func TestFindPartners_OverridesTakePrecedence(t *testing.T) {
	users := &mockUsers{user: domain.User{
		Domains:   []string{"game"},
		StudyTime: "morning",
		TeamPref:  "solo",
	}}
	cands := &mockCandidates{candidates: []domain.Candidate{
		{ID: "c1", Domains: []string{"react"}, StudyTime: "night", TeamPref: "team"},
	}}
	svc := New(users, cands)

	ov := Overrides{Domains: []string{"web"}, StudyTime: "night", TeamPref: "team"}
	got, err := svc.FindPartners(context.Background(), domain.NewID(), ov)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100 (react via web expansion) + 50 (time) + 30 (team)
	if got[0].Score != 180 {
		t.Errorf("score = %d, want 180", got[0].Score)
	}
}

func TestFindPartners_ZeroScoreCandidatesIncluded(t *testing.T) {
	users := &mockUsers{user: domain.User{Domains: []string{"web"}}}
	cands := &mockCandidates{candidates: []domain.Candidate{
		{ID: "c1", Domains: []string{"blender"}},
	}}
	svc := New(users, cands)

	got, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Score != 0 {
		t.Errorf("got = %+v, want one zero-score match", got)
	}
}

func TestFindPartners_TruncatesToLimit(t *testing.T) {
	users := &mockUsers{user: domain.User{Domains: []string{"web"}}}
	var pool []domain.Candidate
	for i := 0; i < 75; i++ {
		pool = append(pool, domain.Candidate{
			ID:      fmt.Sprintf("c%d", i),
			Domains: []string{"react"},
		})
	}
	svc := New(users, &mockCandidates{candidates: pool})

	got, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != DefaultLimit {
		t.Fatalf("got %d matches, want %d", len(got), DefaultLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not monotonic at %d", i)
		}
	}
}

func TestFindPartners_SortedDescendingStable(t *testing.T) {
	users := &mockUsers{user: domain.User{Domains: []string{"web"}, TeamPref: "team"}}
	cands := &mockCandidates{candidates: []domain.Candidate{
		{ID: "low", Domains: []string{"blender"}},
		{ID: "high", Domains: []string{"react", "node"}},
		{ID: "mid", Domains: []string{"react"}},
		{ID: "low2", Domains: []string{"maya"}},
	}}
	svc := New(users, cands)

	got, err := svc.FindPartners(context.Background(), domain.NewID(), Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	want := []string{"high", "mid", "low", "low2"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
