package inquisitor

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	evidencestore "velos/internal/evidence/store"
	"velos/internal/pipeline/models"
)

const strongAnswer = "We implemented a two-tier cache in front of the scoring service " +
	"because profile lookups dominated latency. The trade-off was staleness, so we " +
	"bounded TTLs at 30 seconds and invalidated on writes. I debugged a thundering " +
	"herd issue by adding request coalescing, which cut p99 from 900ms to 120ms. " +
	"The hardest part was proving correctness under concurrent invalidation."

type InquisitorSuite struct {
	suite.Suite
	ctx   context.Context
	store *evidencestore.InMemoryStore
	stage *Stage
}

func TestInquisitorSuite(t *testing.T) {
	suite.Run(t, new(InquisitorSuite))
}

func (s *InquisitorSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = evidencestore.NewInMemoryStore()
	s.stage = New(s.store, 70, slog.Default())
}

func (s *InquisitorSuite) cleanData() models.CleanData {
	return models.CleanData{
		Skills:   []string{"python", "aws", "llm"},
		Projects: []string{"Built a streaming analytics platform"},
	}
}

func (s *InquisitorSuite) TestGenerateQuestionsCount() {
	questions, err := s.stage.GenerateQuestions(s.ctx, "CAND-1A2B3C4D", s.cleanData(), 3)
	s.Require().NoError(err)
	s.Len(questions, 3)
	for _, q := range questions {
		s.NotEmpty(q.Text)
	}
}

func (s *InquisitorSuite) TestEvidenceBasedQuestionsWhenMaterialExists() {
	s.Require().NoError(s.store.AddDocument(s.ctx, "CAND-1A2B3C4D",
		"Designed the system architecture with separate ingestion and scoring components. "+
			"Solved difficult scaling problems during performance optimization work.", "portfolio"))

	questions, err := s.stage.GenerateQuestions(s.ctx, "CAND-1A2B3C4D", s.cleanData(), 3)
	s.Require().NoError(err)
	s.Require().NotEmpty(questions)

	var evidenceBased int
	for _, q := range questions {
		if q.Kind == "evidence-based" {
			evidenceBased++
		}
	}
	s.Positive(evidenceBased)
}

func (s *InquisitorSuite) TestQuestionsWithoutAnyMaterial() {
	questions, err := s.stage.GenerateQuestions(s.ctx, "CAND-1A2B3C4D", models.CleanData{}, 3)
	s.Require().NoError(err)
	s.Len(questions, 3)
}

func (s *InquisitorSuite) TestSkillAwareTemplates() {
	questions, err := s.stage.GenerateQuestions(s.ctx, "CAND-1A2B3C4D", s.cleanData(), 5)
	s.Require().NoError(err)

	var joined strings.Builder
	for _, q := range questions {
		joined.WriteString(q.Text)
	}
	s.Contains(joined.String(), "retrieval pipeline")
}

func (s *InquisitorSuite) TestStrongAnswersPass() {
	pairs := []models.QAPair{
		{Question: "q1", Answer: strongAnswer},
		{Question: "q2", Answer: strongAnswer},
		{Question: "q3", Answer: strongAnswer},
	}
	out, err := s.stage.EvaluateAnswers(s.ctx, s.cleanData(), pairs)
	s.Require().NoError(err)

	s.Equal(models.StagePass, out.Result.Status)
	s.Equal("GENUINE", out.Verdict)
	s.GreaterOrEqual(out.AuthenticityScore, 70.0)
	s.Len(out.IndividualScores, 3)
}

func (s *InquisitorSuite) TestWeakAnswersFail() {
	pairs := []models.QAPair{
		{Question: "q1", Answer: "I think it was fine"},
		{Question: "q2", Answer: "maybe we used python for that part"},
		{Question: "q3", Answer: "idk"},
	}
	out, err := s.stage.EvaluateAnswers(s.ctx, s.cleanData(), pairs)
	s.Require().NoError(err)

	s.Equal(models.StageFail, out.Result.Status)
	s.Equal("SUSPICIOUS", out.Verdict)
	s.NotEmpty(out.RedFlags)
}

func (s *InquisitorSuite) TestEmptyAnswerScoresLow() {
	score, flags := evaluateAnswer("")
	s.Equal(10.0, score)
	s.NotEmpty(flags)
}

func (s *InquisitorSuite) TestNoAnswersIsError() {
	_, err := s.stage.EvaluateAnswers(s.ctx, s.cleanData(), nil)
	s.Error(err)
}

func (s *InquisitorSuite) TestRedFlagsDeduplicated() {
	pairs := []models.QAPair{
		{Question: "q1", Answer: "short answer about the work"},
		{Question: "q2", Answer: "another short answer here too"},
	}
	out, err := s.stage.EvaluateAnswers(s.ctx, s.cleanData(), pairs)
	s.Require().NoError(err)

	counts := make(map[string]int)
	for _, flag := range out.RedFlags {
		counts[flag]++
	}
	for flag, n := range counts {
		s.Equal(1, n, flag)
	}
}
