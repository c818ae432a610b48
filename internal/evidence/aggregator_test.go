package evidence

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AggregatorSuite struct {
	suite.Suite
	agg Aggregator
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

func (s *AggregatorSuite) SetupTest() {
	s.agg = NewAggregator()
}

func (s *AggregatorSuite) TestCombineSumsComponents() {
	out := s.agg.Combine(60, 10, []Assessment{
		{Requirement: "go", Status: StatusMatched, Confidence: 80},
		{Requirement: "kafka", Status: StatusMatched, Confidence: 55},
		{Requirement: "terraform", Status: StatusMissing, Confidence: 10},
	})
	s.Equal(4.0, out.EvidenceBoost)
	s.Equal(74.0, out.FinalScore)
}

func (s *AggregatorSuite) TestCapAtHundred() {
	out := s.agg.Combine(95, 20, []Assessment{
		{Requirement: "go", Status: StatusMatched, Confidence: 90},
	})
	s.Equal(100.0, out.FinalScore)
}

func (s *AggregatorSuite) TestBoostThresholdIsExclusive() {
	out := s.agg.Combine(50, 0, []Assessment{
		{Requirement: "go", Status: StatusMatched, Confidence: 50},
	})
	s.Zero(out.EvidenceBoost)
	s.Equal(50.0, out.FinalScore)
}

func (s *AggregatorSuite) TestScoreFixedBeforeReclassify() {
	// A missing requirement at confidence 45 gets reclassified to matched,
	// but it must not retroactively earn the boost: the score is computed
	// from the pre-reclassification state.
	out := s.agg.Combine(50, 0, []Assessment{
		{Requirement: "kubernetes", Status: StatusMissing, Confidence: 45},
	})
	s.Equal(50.0, out.FinalScore)
	s.Zero(out.EvidenceBoost)
	s.Equal(StatusMatched, out.Assessments[0].Status)
	s.Equal([]string{"kubernetes"}, out.Reclassified)
}

func (s *AggregatorSuite) TestReclassifyThresholdIsExclusive() {
	out := s.agg.Combine(50, 0, []Assessment{
		{Requirement: "rust", Status: StatusMissing, Confidence: 40},
	})
	s.Equal(StatusMissing, out.Assessments[0].Status)
	s.Empty(out.Reclassified)
}

func (s *AggregatorSuite) TestMatchedRequirementsNeverReclassified() {
	out := s.agg.Combine(50, 0, []Assessment{
		{Requirement: "go", Status: StatusMatched, Confidence: 95},
	})
	s.Empty(out.Reclassified)
}

func (s *AggregatorSuite) TestInputSliceNotMutated() {
	in := []Assessment{
		{Requirement: "kubernetes", Status: StatusMissing, Confidence: 45},
	}
	s.agg.Combine(50, 0, in)
	s.Equal(StatusMissing, in[0].Status)
}

func (s *AggregatorSuite) TestNoAssessments() {
	out := s.agg.Combine(70, 5, nil)
	s.Equal(75.0, out.FinalScore)
	s.Empty(out.Assessments)
}
