// Package validator implements the second screening stage: matching
// anonymized candidate capabilities against job requirements with
// retrieval-augmented evidence. It operates on clean data only and refuses
// input that does not carry a structurally valid capability token.
package validator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"velos/internal/evidence"
	"velos/internal/pipeline/models"
)

const evidenceQueryLimit = 3

type Stage struct {
	source     evidence.Source
	aggregator evidence.Aggregator
	threshold  float64
	logger     *slog.Logger
}

func New(source evidence.Source, threshold float64, logger *slog.Logger) *Stage {
	return &Stage{
		source:     source,
		aggregator: evidence.NewAggregator(),
		threshold:  threshold,
		logger:     logger,
	}
}

// Process validates the token, parses requirements, gathers evidence per
// required skill, and scores the match. The token check runs here even when
// the caller just minted the token; the contract is the same for every
// caller.
func (s *Stage) Process(ctx context.Context, in models.StageTwoInput) (models.StageTwoOutput, error) {
	if err := in.Token.Validate(); err != nil {
		return models.StageTwoOutput{
			Result: models.StageResult{
				Status:       models.StageFail,
				Reason:       fmt.Sprintf("token validation failed: %v", err),
				AuditEntries: []string{"token validation failed"},
			},
		}, nil
	}

	requirements := ParseRequirements(in.Requirements)
	assessments, err := s.gatherEvidence(ctx, in, requirements.RequiredSkills)
	if err != nil {
		return models.StageTwoOutput{}, fmt.Errorf("evidence lookup: %w", err)
	}

	base := baseScore(in.CleanData.Skills, requirements.RequiredSkills)
	bonus := projectBonus(in.CleanData.Projects, requirements.RequiredSkills)
	outcome := s.aggregator.Combine(base, bonus, assessments)

	matched, missing := splitMatched(in.CleanData.Skills, requirements.RequiredSkills)
	// Evidence reclassification moves strongly evidenced skills from missing
	// to matched. The score above is already final and does not change.
	reclassified := make(map[string]struct{}, len(outcome.Reclassified))
	for _, skill := range outcome.Reclassified {
		reclassified[skill] = struct{}{}
	}
	var stillMissing []string
	for _, skill := range missing {
		if _, ok := reclassified[skill]; ok {
			matched = append(matched, skill)
		} else {
			stillMissing = append(stillMissing, skill)
		}
	}
	missing = stillMissing

	status := models.StageFail
	reason := fmt.Sprintf("%.0f%% skill match (minimum %.0f%% required)", outcome.FinalScore, s.threshold)
	if outcome.FinalScore >= s.threshold {
		status = models.StagePass
		reason = fmt.Sprintf("%.0f%% skill match (%.0f%% threshold)", outcome.FinalScore, s.threshold)
	}

	s.logger.Info("stage 2 scored",
		"candidate_id", in.CandidateID,
		"base_score", base,
		"project_bonus", bonus,
		"evidence_boost", outcome.EvidenceBoost,
		"final_score", outcome.FinalScore,
		"status", status,
	)

	return models.StageTwoOutput{
		Result: models.StageResult{
			Status: status,
			Reason: reason,
			Metrics: map[string]any{
				"score":          outcome.FinalScore,
				"base_score":     base,
				"project_bonus":  bonus,
				"evidence_boost": outcome.EvidenceBoost,
				"role_level":     requirements.RoleLevel,
			},
			AuditEntries: []string{
				"token validated",
				fmt.Sprintf("requirements parsed: %d skills", len(requirements.RequiredSkills)),
				fmt.Sprintf("evidence gathered for %d requirements", len(assessments)),
				fmt.Sprintf("final score %.1f", outcome.FinalScore),
			},
		},
		Score:         outcome.FinalScore,
		BaseScore:     base,
		ProjectBonus:  bonus,
		EvidenceBoost: outcome.EvidenceBoost,
		Matched:       matched,
		Missing:       missing,
		Assessments:   outcome.Assessments,
	}, nil
}

// gatherEvidence queries the evidence source once per required skill,
// concurrently. Lookups are scoped to the candidate; a failed lookup for one
// skill fails the whole gather so the orchestrator can fall back cleanly.
func (s *Stage) gatherEvidence(ctx context.Context, in models.StageTwoInput, requiredSkills []string) ([]evidence.Assessment, error) {
	if s.source == nil || len(requiredSkills) == 0 {
		return nil, nil
	}

	_, missing := splitMatched(in.CleanData.Skills, requiredSkills)
	missingSet := make(map[string]struct{}, len(missing))
	for _, skill := range missing {
		missingSet[skill] = struct{}{}
	}

	assessments := make([]evidence.Assessment, len(requiredSkills))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, skill := range requiredSkills {
		i, skill := i, skill
		g.Go(func() error {
			query := fmt.Sprintf("%s experience project work", skill)
			matches, err := s.source.Search(gctx, string(in.CandidateID), query, evidenceQueryLimit)
			if err != nil {
				return fmt.Errorf("search %q: %w", skill, err)
			}

			assessment := evidence.Assessment{
				Requirement: skill,
				Status:      evidence.StatusMatched,
			}
			if _, ok := missingSet[skill]; ok {
				assessment.Status = evidence.StatusMissing
			}
			// A chunk counts as evidence for a requirement only if it
			// actually mentions it; overlap on the generic query words alone
			// is not evidence.
			for _, match := range matches {
				if !containsFold(match.Text, skill) {
					continue
				}
				assessment.Confidence = match.Confidence
				assessment.Excerpt = excerpt(match.Text)
				assessment.Source = match.Source
				break
			}
			assessments[i] = assessment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assessments, nil
}

func containsFold(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

func excerpt(text string) string {
	const max = 300
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
