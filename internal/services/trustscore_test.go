package services

import (
	"testing"

	"github.com/asddataking/shittter/internal/models"
)

func rep(cleanliness, privacy, safety int, hasLock, hasTP bool) models.Report {
	return models.Report{
		Cleanliness: cleanliness,
		Privacy:     privacy,
		Safety:      safety,
		HasLock:     hasLock,
		HasTP:       hasTP,
	}
}

func TestComputeTrustScoreEmpty(t *testing.T) {
	if got := ComputeTrustScore(nil); got != 50 {
		t.Fatalf("empty score = %d, want 50", got)
	}
}

func TestComputeTrustScoreKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		reports []models.Report
		want    int
	}{
		{"single perfect", []models.Report{rep(5, 5, 5, false, false)}, 100},
		{"five perfect no amenities", []models.Report{
			rep(5, 5, 5, false, false), rep(5, 5, 5, false, false), rep(5, 5, 5, false, false),
			rep(5, 5, 5, false, false), rep(5, 5, 5, false, false),
		}, 100},
		// base 0.9, stddev 0.1 -> penalty 0.05 -> 85
		{"two mixed", []models.Report{rep(4, 4, 4, false, false), rep(5, 5, 5, false, false)}, 85},
		// same plus strict lock majority (+0.03) -> 88
		{"two mixed lock majority", []models.Report{rep(4, 4, 4, true, false), rep(5, 5, 5, true, false)}, 88},
		// 1 of 2 locks is a tie, no bonus
		{"lock tie no bonus", []models.Report{rep(4, 4, 4, true, false), rep(5, 5, 5, false, false)}, 85},
		// both amenity bonuses
		{"both bonuses", []models.Report{rep(4, 4, 4, true, true), rep(5, 5, 5, true, true)}, 91},
		// base 0.6, stddev 0.4 capped at 0.08 -> 52
		{"variance penalty capped", []models.Report{rep(1, 1, 1, false, false), rep(5, 5, 5, false, false)}, 52},
		// rounding: 4/15 * 100 = 26.67 -> 27
		{"rounds up", []models.Report{rep(1, 1, 2, false, false)}, 27},
		{"all ones", []models.Report{rep(1, 1, 1, false, false)}, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTrustScore(tc.reports); got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeTrustScoreBounds(t *testing.T) {
	for c := 1; c <= 5; c++ {
		for p := 1; p <= 5; p++ {
			for s := 1; s <= 5; s++ {
				for _, amenity := range []bool{false, true} {
					score := ComputeTrustScore([]models.Report{
						rep(c, p, s, amenity, amenity),
						rep(6-c, 6-p, 6-s, false, false),
					})
					if score < 0 || score > 100 {
						t.Fatalf("score %d out of [0,100] for (%d,%d,%d)", score, c, p, s)
					}
				}
			}
		}
	}
}

func TestComputeTrustScoreMonotonicInCleanliness(t *testing.T) {
	prev := -1
	for c := 1; c <= 5; c++ {
		score := ComputeTrustScore([]models.Report{
			rep(c, 3, 3, false, false),
			rep(c, 3, 3, false, false),
			rep(c, 3, 3, false, false),
		})
		if score < prev {
			t.Fatalf("score decreased from %d to %d at cleanliness %d", prev, score, c)
		}
		prev = score
	}
}

func TestComputeTrustScoreIdempotent(t *testing.T) {
	reports := []models.Report{
		rep(4, 3, 5, true, false),
		rep(2, 5, 3, false, true),
		rep(5, 4, 4, true, true),
	}
	first := ComputeTrustScore(reports)
	for i := 0; i < 10; i++ {
		if got := ComputeTrustScore(reports); got != first {
			t.Fatalf("recomputation changed: %d then %d", first, got)
		}
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	if got := BuildSummary(nil); got != NoReportsSummary {
		t.Fatalf("empty summary = %q", got)
	}
}

func TestBuildSummaryTemplates(t *testing.T) {
	tests := []struct {
		name    string
		reports []models.Report
		want    string
	}{
		{
			"all high no amenities",
			[]models.Report{rep(5, 5, 5, false, false)},
			"Based on recent reports: generally good cleanliness, good privacy, good safety. Many report no lock. Bring your own TP recommended.",
		},
		{
			"all high with amenities",
			[]models.Report{rep(5, 5, 5, true, true)},
			"Based on recent reports: generally good cleanliness, good privacy, good safety. Most report a lock. TP usually available.",
		},
		{
			"mid tier",
			[]models.Report{rep(3, 3, 3, false, false)},
			"Based on recent reports: mixed cleanliness, mixed privacy, mixed safety. Many report no lock. Bring your own TP recommended.",
		},
		{
			"low tier",
			[]models.Report{rep(1, 2, 1, false, false)},
			"Based on recent reports: often poor cleanliness, limited privacy, variable safety. Many report no lock. Bring your own TP recommended.",
		},
		{
			// 1 of 2 = 50% sits in the >=40% "varies" band
			"amenity varies band",
			[]models.Report{rep(4, 4, 4, true, true), rep(4, 4, 4, false, false)},
			"Based on recent reports: generally good cleanliness, good privacy, good safety. Lock availability varies. TP availability varies.",
		},
		{
			// 3 of 5 = 60% hits the "most report" threshold exactly
			"sixty percent threshold",
			[]models.Report{
				rep(4, 4, 4, true, true), rep(4, 4, 4, true, true), rep(4, 4, 4, true, true),
				rep(4, 4, 4, false, false), rep(4, 4, 4, false, false),
			},
			"Based on recent reports: generally good cleanliness, good privacy, good safety. Most report a lock. TP usually available.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildSummary(tc.reports); got != tc.want {
				t.Fatalf("summary = %q, want %q", got, tc.want)
			}
		})
	}
}
