package evidence

// Aggregator folds the three scoring components into one bounded score and
// applies evidence-driven reclassification afterward.
type Aggregator struct {
	// BoostPerRequirement is added once per requirement whose retrieval
	// evidence clears BoostConfidence.
	BoostPerRequirement float64
	BoostConfidence     float64
	// ReclassifyConfidence is the evidence confidence above which a missing
	// requirement is reclassified as matched.
	ReclassifyConfidence float64
}

// NewAggregator returns an aggregator with the standard tuning.
func NewAggregator() Aggregator {
	return Aggregator{
		BoostPerRequirement:  2,
		BoostConfidence:      50,
		ReclassifyConfidence: 40,
	}
}

// Outcome is the aggregated scoring result.
type Outcome struct {
	FinalScore    float64      `json:"final_score"`
	BaseScore     float64      `json:"base_score"`
	ProjectBonus  float64      `json:"project_bonus"`
	EvidenceBoost float64      `json:"evidence_boost"`
	Assessments   []Assessment `json:"assessments"`
	Reclassified  []string     `json:"reclassified,omitempty"`
}

// Combine computes final = min(base + bonus + boost, 100), then reclassifies
// missing requirements with strong evidence as matched. The score is fixed
// before reclassification runs: both the score and the matched/missing lists
// reported to callers derive from the same pre-reclassification state, while
// Assessments carries the post-reclassification view for display.
func (a Aggregator) Combine(baseScore, projectBonus float64, assessments []Assessment) Outcome {
	var boost float64
	for _, as := range assessments {
		if as.Confidence > a.BoostConfidence {
			boost += a.BoostPerRequirement
		}
	}

	final := baseScore + projectBonus + boost
	if final > 100 {
		final = 100
	}

	out := Outcome{
		FinalScore:    final,
		BaseScore:     baseScore,
		ProjectBonus:  projectBonus,
		EvidenceBoost: boost,
		Assessments:   make([]Assessment, len(assessments)),
	}
	copy(out.Assessments, assessments)

	for i := range out.Assessments {
		as := &out.Assessments[i]
		if as.Status == StatusMissing && as.Confidence > a.ReclassifyConfidence {
			as.Status = StatusMatched
			out.Reclassified = append(out.Reclassified, as.Requirement)
		}
	}
	return out
}
