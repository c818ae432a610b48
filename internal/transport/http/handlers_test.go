package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"velos/internal/auth"
	"velos/internal/pipeline/models"
	"velos/internal/transport/http/mocks"
	id "velos/pkg/domain"
	dErrors "velos/pkg/domain-errors"
	"velos/pkg/requestcontext"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mocks.go -package=mocks

const testCandidateID = "CAND-1A2B3C4D"

type HandlerSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	service  *mocks.MockPipelineService
	jwtSvc   *auth.JWTService
	keyHash  string
	router   http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockPipelineService(s.ctrl)
	s.jwtSvc = auth.NewJWTService("test-key", "velos", "velos-api")

	hash, err := auth.HashKey("operator-secret")
	s.Require().NoError(err)
	s.keyHash = hash

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(s.service, s.jwtSvc, s.keyHash, logger)
	s.router = NewRouter(handler, auth.RequireOperator(s.jwtSvc, logger))
}

func (s *HandlerSuite) do(method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) operatorHeader() map[string]string {
	token, err := s.jwtSvc.GenerateAccessToken("op-1", auth.RoleOperator, time.Minute)
	s.Require().NoError(err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (s *HandlerSuite) pendingRun() models.CandidateRun {
	run := models.CandidateRun{
		CandidateID: id.CandidateID(testCandidateID),
		FinalStatus: models.StatusQuestionsPending,
		Questions: []models.Question{
			{Text: "Describe the hardest bug you fixed."},
		},
		SubmittedAt: time.Now().UTC(),
	}
	run.RecordStage(models.StageOneName, models.StageResult{
		Status:  models.StagePass,
		Reason:  "eligible: 5.0y experience, PII removed",
		Metrics: map[string]any{"years_experience": 5.0},
	})
	run.RecordStage(models.StageTwoName, models.StageResult{
		Status:  models.StagePass,
		Reason:  "82% skill match (60% threshold)",
		Metrics: map[string]any{"score": 82.0},
	})
	return run
}

func (s *HandlerSuite) TestSubmitReturnsQuestionsWithoutScores() {
	s.service.EXPECT().Submit(gomock.Any(), "resume text", "go", 2.0).
		Return(s.pendingRun(), nil)

	w := s.do(http.MethodPost, "/api/v1/verification/submit",
		submitRequest{Document: "resume text", Requirements: "go", MinYears: 2}, nil)

	s.Equal(http.StatusCreated, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(models.StatusQuestionsPending), resp["status"])
	s.Len(resp["questions"], 1)

	// A parked run returns questions and nothing else: no stage views, no
	// metrics, and no reason strings carrying the requirement score.
	s.NotContains(resp, "stages")
	s.NotContains(w.Body.String(), "skill match")
	s.NotContains(w.Body.String(), "82")
	s.NotContains(w.Body.String(), "metrics")
}

func (s *HandlerSuite) TestTerminalRunIncludesStageOutcomes() {
	rejected := s.pendingRun()
	rejected.FinalStatus = models.StatusRejected
	rejected.FinalReason = "low authenticity: 34% (0/3 genuine)"
	rejected.Questions = nil
	s.service.EXPECT().GetRun(gomock.Any(), id.CandidateID(testCandidateID)).
		Return(rejected, nil)

	w := s.do(http.MethodGet, "/api/v1/verification/"+testCandidateID, nil, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(models.StatusRejected), resp["status"])
	s.Len(resp["stages"], 2)
}

func (s *HandlerSuite) TestSubmitRejectsEmptyDocument() {
	w := s.do(http.MethodPost, "/api/v1/verification/submit",
		submitRequest{Document: "   "}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerSuite) TestSubmitRejectsNegativeMinYears() {
	w := s.do(http.MethodPost, "/api/v1/verification/submit",
		submitRequest{Document: "resume", MinYears: -1}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerSuite) TestSubmitConflictMapsTo409() {
	s.service.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.CandidateRun{}, dErrors.New(dErrors.CodeConflict, "run already in progress"))

	w := s.do(http.MethodPost, "/api/v1/verification/submit",
		submitRequest{Document: "resume"}, nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerSuite) TestGetRunMalformedID() {
	w := s.do(http.MethodGet, "/api/v1/verification/not-a-cand-id", nil, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerSuite) TestGetRunNotFound() {
	s.service.EXPECT().GetRun(gomock.Any(), id.CandidateID(testCandidateID)).
		Return(models.CandidateRun{}, dErrors.New(dErrors.CodeNotFound, "no run for candidate"))

	w := s.do(http.MethodGet, "/api/v1/verification/"+testCandidateID, nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerSuite) TestAnswersForwarded() {
	pairs := []models.QAPair{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}
	approved := s.pendingRun()
	approved.FinalStatus = models.StatusApproved
	s.service.EXPECT().SubmitAnswers(gomock.Any(), id.CandidateID(testCandidateID), pairs).
		Return(approved, nil)

	w := s.do(http.MethodPost, "/api/v1/verification/"+testCandidateID+"/answers",
		answersRequest{Answers: pairs}, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(models.StatusApproved), resp["status"])
}

func (s *HandlerSuite) TestAbandonRequiresOperatorToken() {
	s.service.EXPECT().Abandon(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := s.do(http.MethodPost, "/api/v1/verification/"+testCandidateID+"/abandon",
		abandonRequest{Reason: "withdrawn"}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerSuite) TestAbandonWithOperatorToken() {
	s.service.EXPECT().Abandon(gomock.Any(), id.CandidateID(testCandidateID), "withdrawn").
		DoAndReturn(func(ctx context.Context, candidateID id.CandidateID, reason string) (models.CandidateRun, error) {
			s.Equal("op-1", requestcontext.Operator(ctx))
			run := s.pendingRun()
			run.FinalStatus = models.StatusAbandoned
			run.FinalReason = reason
			return run, nil
		})

	w := s.do(http.MethodPost, "/api/v1/verification/"+testCandidateID+"/abandon",
		abandonRequest{Reason: "withdrawn"}, s.operatorHeader())

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(string(models.StatusAbandoned), resp["status"])
}

func (s *HandlerSuite) TestStatsRequiresOperatorToken() {
	w := s.do(http.MethodGet, "/api/v1/admin/stats", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerSuite) TestStatsWithOperatorToken() {
	s.service.EXPECT().Stats(gomock.Any()).
		Return(map[string]int{"APPROVED": 4, "IN_FLIGHT": 1}, nil)

	w := s.do(http.MethodGet, "/api/v1/admin/stats", nil, s.operatorHeader())

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"APPROVED":4`)
}

func (s *HandlerSuite) TestIssueTokenWithValidKey() {
	w := s.do(http.MethodPost, "/api/v1/auth/token",
		tokenRequest{OperatorID: "op-1", OperatorKey: "operator-secret"}, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp["access_token"])
	s.Equal("Bearer", resp["token_type"])
}

func (s *HandlerSuite) TestIssueTokenWithWrongKey() {
	w := s.do(http.MethodPost, "/api/v1/auth/token",
		tokenRequest{OperatorID: "op-1", OperatorKey: "wrong"}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerSuite) TestRequestIDEchoed() {
	s.service.EXPECT().GetRun(gomock.Any(), gomock.Any()).
		Return(s.pendingRun(), nil)

	w := s.do(http.MethodGet, "/api/v1/verification/"+testCandidateID, nil,
		map[string]string{"X-Request-Id": "req-42"})

	s.Equal("req-42", w.Header().Get("X-Request-Id"))
}

func (s *HandlerSuite) TestHealthz() {
	w := s.do(http.MethodGet, "/healthz", nil, nil)
	s.Equal(http.StatusOK, w.Code)
}
