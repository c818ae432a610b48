package validator

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	evidencestore "velos/internal/evidence/store"
	"velos/internal/pipeline/models"
	domain "velos/pkg/domain"
)

type ValidatorSuite struct {
	suite.Suite
	ctx   context.Context
	store *evidencestore.InMemoryStore
	stage *Stage
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = evidencestore.NewInMemoryStore()
	s.stage = New(s.store, 60, slog.Default())
}

func validToken() domain.CapabilityToken {
	return domain.CapabilityToken("CLEAN-ABCDEF1234567890")
}

func (s *ValidatorSuite) input() models.StageTwoInput {
	return models.StageTwoInput{
		CandidateID: "CAND-1A2B3C4D",
		CleanData: models.CleanData{
			Skills:   []string{"python", "sql", "docker"},
			Projects: []string{"Built a python ETL pipeline loading sql warehouses"},
		},
		Requirements: "Looking for an engineer with python and sql skills.",
		Token:        validToken(),
	}
}

func (s *ValidatorSuite) TestFullMatchPasses() {
	out, err := s.stage.Process(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(models.StagePass, out.Result.Status)
	s.GreaterOrEqual(out.Score, 60.0)
	s.ElementsMatch([]string{"python", "sql"}, out.Matched)
	s.Empty(out.Missing)
}

func (s *ValidatorSuite) TestMalformedTokenRejectedRegardlessOfContent() {
	cases := map[string]domain.CapabilityToken{
		"empty":        "",
		"wrong prefix": "DIRTY-ABCDEF1234567890",
		"too short":    "CLEAN-123",
		"too long":     "CLEAN-ABCDEF1234567890EXTRA",
	}
	for name, token := range cases {
		s.Run(name, func() {
			in := s.input()
			in.Token = token
			out, err := s.stage.Process(s.ctx, in)
			s.Require().NoError(err)
			s.Equal(models.StageFail, out.Result.Status)
			s.Contains(out.Result.Reason, "token")
			s.Zero(out.Score)
		})
	}
}

func (s *ValidatorSuite) TestNoSkillsFails() {
	in := s.input()
	in.CleanData = models.CleanData{}
	out, err := s.stage.Process(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(models.StageFail, out.Result.Status)
}

func (s *ValidatorSuite) TestEvidenceBoostsScore() {
	s.Require().NoError(s.store.AddDocument(s.ctx, "CAND-1A2B3C4D",
		"Extensive python experience: project work building python services. "+
			"Deep sql experience from data warehouse project work.", "resume"))

	withEvidence, err := s.stage.Process(s.ctx, s.input())
	s.Require().NoError(err)

	bare := New(evidencestore.NewInMemoryStore(), 60, slog.Default())
	withoutEvidence, err := bare.Process(s.ctx, s.input())
	s.Require().NoError(err)

	s.GreaterOrEqual(withEvidence.Score, withoutEvidence.Score)
	s.Positive(withEvidence.EvidenceBoost)
}

func (s *ValidatorSuite) TestEvidenceReclassifiesMissingSkill() {
	in := s.input()
	in.CleanData.Skills = []string{"docker"} // python and sql missing
	in.CleanData.Projects = nil

	s.Require().NoError(s.store.AddDocument(s.ctx, "CAND-1A2B3C4D",
		"python experience project work python experience project work", "portfolio"))

	out, err := s.stage.Process(s.ctx, in)
	s.Require().NoError(err)

	s.Contains(out.Matched, "python")
	s.NotContains(out.Missing, "python")
	s.Contains(out.Missing, "sql")
}

func (s *ValidatorSuite) TestProjectBonusCapped() {
	projects := make([]string, 12)
	for i := range projects {
		projects[i] = "Built a python sql service with python and sql everywhere"
	}
	s.LessOrEqual(projectBonus(projects, []string{"python", "sql"}), 20.0)
}

func (s *ValidatorSuite) TestBaseScoreRules() {
	s.Equal(75.0, baseScore([]string{"python"}, nil))
	s.Equal(0.0, baseScore(nil, []string{"python"}))
	s.Equal(100.0, baseScore([]string{"python", "sql"}, []string{"python", "sql"}))
	// substring credit: "node.js" vs required "node" scores half
	s.Equal(50.0, baseScore([]string{"node.js"}, []string{"node"}))
}

func (s *ValidatorSuite) TestParseRequirements() {
	req := ParseRequirements("Senior engineer: python, kubernetes, kafka required.")
	s.Equal("senior", req.RoleLevel)
	s.Equal(4.0, req.MinYears)
	s.Contains(req.RequiredSkills, "python")
	s.Contains(req.RequiredSkills, "kubernetes")
	s.Contains(req.RequiredSkills, "kafka")
}
