// Package inquisitor implements the third screening stage: verifying that a
// candidate actually did the work their material claims. It issues targeted
// questions and scores the answers for authenticity.
package inquisitor

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"velos/internal/evidence"
	"velos/internal/pipeline/models"
)

type Stage struct {
	source    evidence.Source
	threshold float64
	logger    *slog.Logger
}

func New(source evidence.Source, threshold float64, logger *slog.Logger) *Stage {
	return &Stage{source: source, threshold: threshold, logger: logger}
}

// GenerateQuestions produces count verification questions for the candidate.
func (s *Stage) GenerateQuestions(ctx context.Context, candidateID string, clean models.CleanData, count int) ([]models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	questions := generateQuestions(ctx, s.source, candidateID, clean, count)
	s.logger.Info("stage 3 questions generated",
		"candidate_id", candidateID, "count", len(questions))
	return questions, nil
}

// EvaluateAnswers scores every answer for authenticity and decides PASS or
// FAIL. The final score is the mean of the per-answer scores; passing also
// requires at least half the answers to read as genuine.
func (s *Stage) EvaluateAnswers(ctx context.Context, clean models.CleanData, pairs []models.QAPair) (models.StageThreeOutput, error) {
	if err := ctx.Err(); err != nil {
		return models.StageThreeOutput{}, err
	}
	if len(pairs) == 0 {
		return models.StageThreeOutput{}, fmt.Errorf("no answers provided")
	}

	var (
		scores   []float64
		redFlags []string
		genuine  int
		total    float64
	)
	for _, pair := range pairs {
		score, flags := evaluateAnswer(pair.Answer)
		scores = append(scores, score)
		redFlags = append(redFlags, flags...)
		if score >= 60 {
			genuine++
		}
		total += score
	}
	average := total / float64(len(pairs))
	redFlags = dedupe(redFlags)

	verdict := "SUSPICIOUS"
	status := models.StageFail
	reason := fmt.Sprintf("low authenticity: %.0f%% (%d/%d genuine)", average, genuine, len(pairs))
	if average >= s.threshold && float64(genuine) >= float64(len(pairs))/2 {
		verdict = "GENUINE"
		status = models.StagePass
		reason = fmt.Sprintf("authentic: %.0f%% confidence (%d/%d genuine)", average, genuine, len(pairs))
	}

	s.logger.Info("stage 3 answers evaluated",
		"authenticity_score", average,
		"genuine", genuine,
		"answers", len(pairs),
		"status", status,
	)

	return models.StageThreeOutput{
		Result: models.StageResult{
			Status: status,
			Reason: reason,
			Metrics: map[string]any{
				"authenticity_score": average,
				"individual_scores":  scores,
				"genuine_count":      genuine,
				"red_flags_count":    len(redFlags),
			},
			AuditEntries: []string{
				fmt.Sprintf("evaluated %d answers", len(pairs)),
				fmt.Sprintf("authenticity score %.1f", average),
				fmt.Sprintf("red flags: %d", len(redFlags)),
			},
		},
		AuthenticityScore: average,
		IndividualScores:  scores,
		RedFlags:          redFlags,
		Verdict:           verdict,
	}, nil
}

var (
	numberPattern    = regexp.MustCompile(`\d+`)
	reasoningWords   = []string{"because", "trade-off", "challenge", "decided"}
	actionWords      = []string{"implemented", "built", "designed", "debugged"}
	uncertainOpeners = []string{"i think", "maybe", "probably"}
)

// evaluateAnswer scores one answer 0-100. Starts neutral at 50; detail,
// reasoning, numbers, and action-oriented language raise it, vagueness and
// hedging lower it.
func evaluateAnswer(answer string) (float64, []string) {
	answer = strings.TrimSpace(answer)
	if len(answer) < 20 {
		return 10, []string{"answer too short or empty"}
	}

	score := 50.0
	var flags []string
	lower := strings.ToLower(answer)

	if len(answer) > 200 {
		score += 10
	}
	if containsAny(lower, reasoningWords) {
		score += 10
	}
	if numberPattern.MatchString(answer) {
		score += 5
	}
	if containsAny(lower, actionWords) {
		score += 10
	}

	if len(answer) < 100 {
		score -= 15
		flags = append(flags, "answer lacks detail")
	}
	for _, opener := range uncertainOpeners {
		if strings.HasPrefix(lower, opener) {
			score -= 10
			flags = append(flags, "uncertain language")
			break
		}
	}
	if strings.Count(answer, ".") < 2 {
		score -= 10
		flags = append(flags, "single sentence answer")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, flags
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
