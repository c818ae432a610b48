package gatekeeper

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"velos/internal/pipeline/models"
)

const sampleResume = `Name: Jane Example
Email: jane@example.com
Phone: 555-123-4567
Location: Springfield

Senior engineer with 3.5 years of experience building backend services.

Skills: Python, Go, SQL, Docker, Kubernetes, Kafka

Built a payment reconciliation pipeline processing 2M events daily.
Developed a fraud detection service using machine learning.

Education: Bachelor's in Computer Science, Stanford`

type GatekeeperSuite struct {
	suite.Suite
	ctx   context.Context
	stage *Stage
}

func TestGatekeeperSuite(t *testing.T) {
	suite.Run(t, new(GatekeeperSuite))
}

func (s *GatekeeperSuite) SetupTest() {
	s.ctx = context.Background()
	s.stage = New(slog.Default())
}

func (s *GatekeeperSuite) TestEligibleCandidatePasses() {
	out, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)

	s.Equal(models.StagePass, out.Result.Status)
	s.InDelta(3.5, out.YearsExperience, 0.01)
	s.NoError(out.Token.Validate())
	s.NotEmpty(out.CleanText)
	s.NotEmpty(out.Result.AuditEntries)
}

func (s *GatekeeperSuite) TestIneligibleCandidateRejectedEarly() {
	resume := "Junior developer with 0.5 years of experience in Python."
	out, err := s.stage.Process(s.ctx, resume, 2.0)
	s.Require().NoError(err)

	s.Equal(models.StageFail, out.Result.Status)
	s.NotEmpty(out.Result.Reason)
	s.Empty(out.Token)
	s.Empty(out.CleanText)
	s.Empty(out.CleanData.Skills)
}

func (s *GatekeeperSuite) TestRedactionRemovesPII() {
	out, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)

	s.NotContains(out.CleanText, "jane@example.com")
	s.NotContains(out.CleanText, "555-123-4567")
	s.NotContains(out.CleanText, "Stanford")
	s.Contains(out.CleanText, "[EMAIL_REDACTED]")
	s.Positive(out.RedactionStats["emails"])
	s.Positive(out.RedactionStats["phones"])
	s.Positive(out.RedactionStats["colleges"])
}

func (s *GatekeeperSuite) TestCleanDataExtraction() {
	out, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)

	s.Contains(out.CleanData.Skills, "python")
	s.Contains(out.CleanData.Skills, "go")
	s.Contains(out.CleanData.Skills, "kubernetes")
	s.NotEmpty(out.CleanData.Projects)
	s.NotEmpty(out.CleanData.EducationLevels)
}

func (s *GatekeeperSuite) TestBiasFlagsDetected() {
	out, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)

	var kinds []string
	for _, flag := range out.BiasFlags {
		kinds = append(kinds, flag.Type)
	}
	s.Contains(kinds, "education_prestige")
}

func (s *GatekeeperSuite) TestHonorificsRedacted() {
	redacted, stats := NewRedactor().Redact(
		"Mr. Smith has 5 years of experience in Python. Mrs. Doe reviewed his work.")

	s.NotContains(redacted, "Mr.")
	s.NotContains(redacted, "Mrs.")
	s.Contains(redacted, "[REDACTED]")
	s.Positive(stats["gender_refs"])
}

func (s *GatekeeperSuite) TestEmptyDocumentIsError() {
	_, err := s.stage.Process(s.ctx, "   ", 2.0)
	s.Error(err)
}

func (s *GatekeeperSuite) TestExperienceFromDateRanges() {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	text := "Software Engineer, Acme Corp, 2020-2023\nBackend Engineer, Beta Inc, 2023-present"
	years := ExtractYears(text, now)
	s.InDelta(6.0, years, 0.01)
}

func (s *GatekeeperSuite) TestExplicitYearsWinOverDates() {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	text := "8 years of experience. Worked 2024-2025 at one role."
	s.InDelta(8.0, ExtractYears(text, now), 0.01)
}

func (s *GatekeeperSuite) TestTokensDifferAcrossMintTimes() {
	first, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)
	second, err := s.stage.Process(s.ctx, sampleResume, 2.0)
	s.Require().NoError(err)
	// Timestamp is part of the recipe, so even identical documents mint
	// distinct tokens.
	s.NotEqual(first.Token, second.Token)
}
