package services

import (
	"fmt"
	"math"

	"github.com/asddataking/shittter/internal/models"
)

// NoReportsSummary is returned for places with zero approved reports.
const NoReportsSummary = "No reports yet. Be the first to help the next person."

// ComputeTrustScore derives the 0-100 trust score from a window of approved
// reports (callers pass the newest 20). Zero reports yields the neutral 50.
//
//	base     = (avg cleanliness + avg privacy + avg safety) / 15, clamped [0,1]
//	bonuses  = +0.03 each for a strict lock / TP majority
//	penalty  = min(0.08, popStddev(per-report composite vs base) * 0.5)
//	score    = round((base + bonuses - penalty) * 100), clamped [0,100]
//
// math.Round rounds half away from zero; tests pin that behavior.
func ComputeTrustScore(reports []models.Report) int {
	if len(reports) == 0 {
		return 50
	}

	n := float64(len(reports))
	var sumClean, sumPriv, sumSafe float64
	lockCount, tpCount := 0, 0
	for _, r := range reports {
		sumClean += float64(r.Cleanliness)
		sumPriv += float64(r.Privacy)
		sumSafe += float64(r.Safety)
		if r.HasLock {
			lockCount++
		}
		if r.HasTP {
			tpCount++
		}
	}

	base := (sumClean/n + sumPriv/n + sumSafe/n) / 15
	base = math.Min(1, math.Max(0, base))

	lockBonus := 0.0
	if float64(lockCount) > n/2 {
		lockBonus = 0.03
	}
	tpBonus := 0.0
	if float64(tpCount) > n/2 {
		tpBonus = 0.03
	}

	// Population stddev of per-report composites, measured against base.
	var sumSq float64
	for _, r := range reports {
		c := float64(r.Cleanliness+r.Privacy+r.Safety) / 15
		sumSq += (c - base) * (c - base)
	}
	stddev := math.Sqrt(sumSq / n)
	variancePenalty := math.Min(0.08, stddev*0.5)

	score := (base + lockBonus + tpBonus - variancePenalty) * 100
	return int(math.Round(math.Min(100, math.Max(0, score))))
}

// BuildSummary renders the fixed two-sentence template from the same report
// window. Every output is one of a small enumerable set of completions.
func BuildSummary(reports []models.Report) string {
	if len(reports) == 0 {
		return NoReportsSummary
	}

	n := float64(len(reports))
	var sumClean, sumPriv, sumSafe float64
	lockCount, tpCount := 0, 0
	for _, r := range reports {
		sumClean += float64(r.Cleanliness)
		sumPriv += float64(r.Privacy)
		sumSafe += float64(r.Safety)
		if r.HasLock {
			lockCount++
		}
		if r.HasTP {
			tpCount++
		}
	}
	avgClean := sumClean / n
	avgPriv := sumPriv / n
	avgSafe := sumSafe / n
	lockPct := float64(lockCount) / n * 100
	tpPct := float64(tpCount) / n * 100

	cleanWord := tierWord(avgClean, "generally good", "mixed", "often poor")
	privWord := tierWord(avgPriv, "good", "mixed", "limited")
	safeWord := tierWord(avgSafe, "good", "mixed", "variable")

	lockLine := pctLine(lockPct, "Most report a lock.", "Lock availability varies.", "Many report no lock.")
	tpLine := pctLine(tpPct, "TP usually available.", "TP availability varies.", "Bring your own TP recommended.")

	return fmt.Sprintf("Based on recent reports: %s cleanliness, %s privacy, %s safety. %s %s",
		cleanWord, privWord, safeWord, lockLine, tpLine)
}

func tierWord(avg float64, high, mid, low string) string {
	switch {
	case avg >= 4:
		return high
	case avg >= 2.5:
		return mid
	default:
		return low
	}
}

func pctLine(pct float64, high, mid, low string) string {
	switch {
	case pct >= 60:
		return high
	case pct >= 40:
		return mid
	default:
		return low
	}
}
