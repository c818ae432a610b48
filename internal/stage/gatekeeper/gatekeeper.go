// Package gatekeeper implements the first screening stage: eligibility
// checking and PII anonymization. Downstream stages never see raw candidate
// text; everything they receive passes through here first.
package gatekeeper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"velos/internal/pipeline/models"
	domain "velos/pkg/domain"
)

type Stage struct {
	redactor *Redactor
	logger   *slog.Logger
	now      func() time.Time
}

func New(logger *slog.Logger) *Stage {
	return &Stage{
		redactor: NewRedactor(),
		logger:   logger,
		now:      time.Now,
	}
}

// Process runs eligibility and anonymization. An ineligible candidate is
// rejected before any redaction or extraction work happens; no token is
// minted on failure.
func (s *Stage) Process(ctx context.Context, document string, minYears float64) (models.StageOneOutput, error) {
	if err := ctx.Err(); err != nil {
		return models.StageOneOutput{}, err
	}
	if strings.TrimSpace(document) == "" {
		return models.StageOneOutput{}, fmt.Errorf("empty document")
	}

	years := ExtractYears(document, s.now())
	eligible, reason := CheckEligibility(years, minYears)
	if !eligible {
		return models.StageOneOutput{
			Result: models.StageResult{
				Status: models.StageFail,
				Reason: reason,
				Metrics: map[string]any{
					"years_experience": years,
					"min_years":        minYears,
				},
				AuditEntries: []string{
					fmt.Sprintf("experience extracted: %.1fy", years),
					"eligibility check failed",
				},
			},
			YearsExperience: years,
		}, nil
	}

	biasFlags := detectBiasIndicators(document)
	redacted, stats := s.redactor.Redact(document)
	cleanData := ExtractCleanData(redacted)

	documentHash := sha256.Sum256([]byte(document))
	token := domain.MintCapabilityToken(hex.EncodeToString(documentHash[:]), s.now())

	s.logger.Info("stage 1 passed",
		"years_experience", years,
		"skills", len(cleanData.Skills),
		"bias_flags", len(biasFlags),
	)

	return models.StageOneOutput{
		Result: models.StageResult{
			Status: models.StagePass,
			Reason: fmt.Sprintf("eligible: %.1fy experience, PII removed", years),
			Metrics: map[string]any{
				"years_experience": years,
				"skills_count":     len(cleanData.Skills),
				"projects_count":   len(cleanData.Projects),
				"bias_flags":       len(biasFlags),
				"redaction_stats":  stats,
			},
			AuditEntries: []string{
				fmt.Sprintf("experience extracted: %.1fy", years),
				"eligibility check passed",
				fmt.Sprintf("bias indicators detected: %d", len(biasFlags)),
				"pii redacted",
				"clean data extracted",
				"capability token minted",
			},
		},
		YearsExperience: years,
		CleanData:       cleanData,
		CleanText:       redacted,
		Token:           token,
		BiasFlags:       biasFlags,
		RedactionStats:  stats,
	}, nil
}

var birthYearPattern = regexp.MustCompile(`\b19[4-8]\d\b`)

var genderIndicators = []string{"he/him", "she/her", "mr.", "mrs.", "ms."}

var eliteInstitutions = []string{"IIT", "Stanford", "MIT", "Harvard", "Ivy League"}

// detectBiasIndicators flags content that could bias a reviewer. Flags feed
// the audit trail only; the redactor handles removal.
func detectBiasIndicators(text string) []models.BiasFlag {
	var flags []models.BiasFlag
	lower := strings.ToLower(text)

	// Only plausible birth years, not employment or graduation years.
	if birthYearPattern.MatchString(text) {
		flags = append(flags, models.BiasFlag{
			Type:        "age",
			Description: "possible birth year detected",
			Action:      "redacted",
		})
	}
	for _, word := range genderIndicators {
		if strings.Contains(lower, word) {
			flags = append(flags, models.BiasFlag{
				Type:        "gender",
				Description: fmt.Sprintf("gender indicator %q detected", word),
				Action:      "redacted",
			})
		}
	}
	for _, inst := range eliteInstitutions {
		if strings.Contains(lower, strings.ToLower(inst)) {
			flags = append(flags, models.BiasFlag{
				Type:        "education_prestige",
				Description: fmt.Sprintf("elite institution %q detected", inst),
				Action:      "redacted",
			})
		}
	}
	return flags
}
