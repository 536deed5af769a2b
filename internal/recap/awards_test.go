package recap

import (
	"reflect"
	"testing"

	"fantasy-recap-service/internal/domain"
)

func awardByName(t *testing.T, rec domain.Recap, name string) domain.Award {
	t.Helper()
	for _, a := range rec.Awards {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("award %q not present (have %v)", name, awardNames(rec))
	return domain.Award{}
}

func hasAward(rec domain.Recap, name string) bool {
	for _, a := range rec.Awards {
		if a.Name == name {
			return true
		}
	}
	return false
}

func awardNames(rec domain.Recap) []string {
	names := make([]string, 0, len(rec.Awards))
	for _, a := range rec.Awards {
		names = append(names, a.Name)
	}
	return names
}

// The reference week: A 145.67 over B 132.45, and C 128.90 tied with D 128.90.
func referenceWeek() []domain.Matchup {
	return []domain.Matchup{
		matchup("A", 145.67, "B", 132.45),
		matchup("C", 128.90, "D", 128.90),
	}
}

func TestTopScorerAward(t *testing.T) {
	rec := Compose(1, referenceWeek(), ToneDefault)

	top := awardByName(t, rec, domain.AwardTopScorer)
	if !reflect.DeepEqual(top.Teams, []string{"A"}) {
		t.Fatalf("expected Top Scorer A, got %v", top.Teams)
	}
	if top.Points != 145.67 {
		t.Fatalf("expected 145.67 points, got %v", top.Points)
	}
}

func TestLowScorerAwardSharedOnTie(t *testing.T) {
	rec := Compose(1, referenceWeek(), ToneDefault)

	low := awardByName(t, rec, domain.AwardLowScorer)
	if !reflect.DeepEqual(low.Teams, []string{"C", "D"}) {
		t.Fatalf("expected Low Scorer shared by C and D, got %v", low.Teams)
	}
	if low.Points != 128.90 {
		t.Fatalf("expected 128.9 points, got %v", low.Points)
	}
}

func TestLargestMarginAward(t *testing.T) {
	rec := Compose(1, referenceWeek(), ToneDefault)

	largest := awardByName(t, rec, domain.AwardLargestMargin)
	if !reflect.DeepEqual(largest.Teams, []string{"A"}) {
		t.Fatalf("expected Largest Margin winner A, got %v", largest.Teams)
	}
	if largest.Points != 13.22 {
		t.Fatalf("expected margin 13.22, got %v", largest.Points)
	}
}

func TestSmallestMarginOmittedWithSingleContest(t *testing.T) {
	// Only one non-tied matchup: Smallest Margin would trivially repeat
	// Largest Margin, so it is omitted.
	rec := Compose(1, referenceWeek(), ToneDefault)

	if hasAward(rec, domain.AwardSmallestMargin) {
		t.Fatal("expected Smallest Margin to be omitted with a single non-tied matchup")
	}
}

func TestSmallestMarginAward(t *testing.T) {
	matchups := append(referenceWeek(), matchup("E", 101.5, "F", 100))
	rec := Compose(1, matchups, ToneDefault)

	smallest := awardByName(t, rec, domain.AwardSmallestMargin)
	if !reflect.DeepEqual(smallest.Teams, []string{"E"}) {
		t.Fatalf("expected Smallest Margin winner E, got %v", smallest.Teams)
	}
	if smallest.Points != 1.5 {
		t.Fatalf("expected margin 1.5, got %v", smallest.Points)
	}
}

func TestMarginAwardsOmittedWhenAllTies(t *testing.T) {
	matchups := []domain.Matchup{
		matchup("A", 100, "B", 100),
		matchup("C", 90, "D", 90),
	}
	rec := Compose(1, matchups, ToneDefault)

	if hasAward(rec, domain.AwardLargestMargin) || hasAward(rec, domain.AwardSmallestMargin) {
		t.Fatalf("expected no margin awards for an all-tie week, got %v", awardNames(rec))
	}
	if !hasAward(rec, domain.AwardTopScorer) || !hasAward(rec, domain.AwardLowScorer) {
		t.Fatalf("expected scorer awards to survive an all-tie week, got %v", awardNames(rec))
	}
}

func TestTiedMatchupNeverWinsMarginAwards(t *testing.T) {
	matchups := []domain.Matchup{
		matchup("A", 100, "B", 100), // tie, margin 0 would otherwise be smallest
		matchup("C", 120, "D", 90),
		matchup("E", 105, "F", 100),
	}
	rec := Compose(1, matchups, ToneDefault)

	smallest := awardByName(t, rec, domain.AwardSmallestMargin)
	for _, team := range smallest.Teams {
		if team == "A" || team == "B" {
			t.Fatalf("tied teams must not appear in Smallest Margin, got %v", smallest.Teams)
		}
	}
	largest := awardByName(t, rec, domain.AwardLargestMargin)
	if !reflect.DeepEqual(largest.Teams, []string{"C"}) {
		t.Fatalf("expected Largest Margin winner C, got %v", largest.Teams)
	}
}

func TestSharedMarginAwards(t *testing.T) {
	matchups := []domain.Matchup{
		matchup("A", 110, "B", 100),
		matchup("C", 95, "D", 85),
	}
	rec := Compose(1, matchups, ToneDefault)

	largest := awardByName(t, rec, domain.AwardLargestMargin)
	if !reflect.DeepEqual(largest.Teams, []string{"A", "C"}) {
		t.Fatalf("expected shared Largest Margin for A and C, got %v", largest.Teams)
	}
	smallest := awardByName(t, rec, domain.AwardSmallestMargin)
	if !reflect.DeepEqual(smallest.Teams, []string{"A", "C"}) {
		t.Fatalf("expected shared Smallest Margin for A and C, got %v", smallest.Teams)
	}
}

func TestTopScorerSharedAcrossMatchups(t *testing.T) {
	matchups := []domain.Matchup{
		matchup("A", 140, "B", 100),
		matchup("C", 140, "D", 90),
	}
	rec := Compose(1, matchups, ToneDefault)

	top := awardByName(t, rec, domain.AwardTopScorer)
	if !reflect.DeepEqual(top.Teams, []string{"A", "C"}) {
		t.Fatalf("expected Top Scorer shared by A and C, got %v", top.Teams)
	}
}
