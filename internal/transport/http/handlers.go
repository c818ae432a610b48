// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// the pipeline service, and shape responses; business rules live below.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"velos/internal/audit"
	"velos/internal/auth"
	"velos/internal/ledger"
	"velos/internal/pipeline"
	"velos/internal/pipeline/models"
	id "velos/pkg/domain"
	dErrors "velos/pkg/domain-errors"
	"velos/pkg/platform/httputil"
	"velos/pkg/requestcontext"
)

// PipelineService defines the pipeline operations the transport exposes.
type PipelineService interface {
	Submit(ctx context.Context, document, jobRequirements string, minYears float64) (models.CandidateRun, error)
	SubmitAnswers(ctx context.Context, candidateID id.CandidateID, pairs []models.QAPair) (models.CandidateRun, error)
	Abandon(ctx context.Context, candidateID id.CandidateID, reason string) (models.CandidateRun, error)
	GetRun(ctx context.Context, candidateID id.CandidateID) (models.CandidateRun, error)
	GetTrustPacket(ctx context.Context, candidateID id.CandidateID) (pipeline.TrustPacket, error)
	VerifyIntegrity(ctx context.Context, candidateID id.CandidateID) (ledger.Report, error)
	History(ctx context.Context, candidateID id.CandidateID) ([]audit.Event, error)
	Stats(ctx context.Context) (map[string]int, error)
}

// TokenIssuer mints operator access tokens.
type TokenIssuer interface {
	GenerateAccessToken(operatorID, role string, expiresIn time.Duration) (string, error)
}

// Handler wires verification endpoints to the pipeline service.
type Handler struct {
	pipeline        PipelineService
	tokens          TokenIssuer
	operatorKeyHash string
	logger          *slog.Logger
}

func NewHandler(pipeline PipelineService, tokens TokenIssuer, operatorKeyHash string, logger *slog.Logger) *Handler {
	return &Handler{
		pipeline:        pipeline,
		tokens:          tokens,
		operatorKeyHash: operatorKeyHash,
		logger:          logger,
	}
}

type submitRequest struct {
	Document     string  `json:"document"`
	Requirements string  `json:"requirements"`
	MinYears     float64 `json:"min_years"`
}

type answersRequest struct {
	Answers []models.QAPair `json:"answers"`
}

type abandonRequest struct {
	Reason string `json:"reason"`
}

type tokenRequest struct {
	OperatorID  string `json:"operator_id"`
	OperatorKey string `json:"operator_key"`
}

type stageView struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// runResponse is the candidate-facing view of a run. Stage metrics and raw
// scores are withheld; candidates see outcomes and questions only.
type runResponse struct {
	CandidateID string            `json:"candidate_id"`
	Status      string            `json:"status"`
	Reason      string            `json:"reason,omitempty"`
	Stages      []stageView       `json:"stages,omitempty"`
	Questions   []models.Question `json:"questions,omitempty"`
	SealBlockID string            `json:"seal_block_id,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func toRunResponse(run models.CandidateRun) runResponse {
	resp := runResponse{
		CandidateID: string(run.CandidateID),
		Status:      string(run.FinalStatus),
		Reason:      run.FinalReason,
		Questions:   run.Questions,
		SubmittedAt: run.SubmittedAt,
	}
	// Stage detail stays internal while a run is live. A parked run returns
	// the questions and nothing else; Stage 2's reason carries the requirement
	// score, which candidates must not see before a decision.
	if run.FinalStatus.Terminal() {
		for _, name := range run.StageOrder {
			result := run.StageResults[name]
			resp.Stages = append(resp.Stages, stageView{
				Name:   name,
				Status: string(result.Status),
				Reason: result.Reason,
			})
		}
	}
	if run.TrustSeal != nil {
		resp.SealBlockID = run.TrustSeal.BlockID
	}
	if !run.CompletedAt.IsZero() {
		completed := run.CompletedAt
		resp.CompletedAt = &completed
	}
	return resp
}

// HandleSubmit handles POST /api/v1/verification/submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.Decode[submitRequest](w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Document) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "document is required"))
		return
	}
	if req.MinYears < 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "min_years cannot be negative"))
		return
	}

	run, err := h.pipeline.Submit(ctx, req.Document, req.Requirements, req.MinYears)
	if err != nil {
		h.logger.ErrorContext(ctx, "submit failed",
			"request_id", requestcontext.RequestID(ctx), "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toRunResponse(run))
}

// HandleAnswers handles POST /api/v1/verification/{candidateID}/answers.
func (h *Handler) HandleAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[answersRequest](w, r)
	if !ok {
		return
	}

	run, err := h.pipeline.SubmitAnswers(ctx, candidateID, req.Answers)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRunResponse(run))
}

// HandleGetRun handles GET /api/v1/verification/{candidateID}.
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	run, err := h.pipeline.GetRun(r.Context(), candidateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRunResponse(run))
}

// HandleTrustPacket handles GET /api/v1/verification/{candidateID}/trust-packet.
func (h *Handler) HandleTrustPacket(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	packet, err := h.pipeline.GetTrustPacket(r.Context(), candidateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, packet)
}

// HandleVerify handles GET /api/v1/verification/{candidateID}/verify.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	report, err := h.pipeline.VerifyIntegrity(r.Context(), candidateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// HandleHistory handles GET /api/v1/verification/{candidateID}/history.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	events, err := h.pipeline.History(r.Context(), candidateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"events": events})
}

// HandleAbandon handles POST /api/v1/verification/{candidateID}/abandon.
// Operator-only.
func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	candidateID, ok := h.candidateID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[abandonRequest](w, r)
	if !ok {
		return
	}

	run, err := h.pipeline.Abandon(ctx, candidateID, req.Reason)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "run abandoned",
		"candidate_id", candidateID,
		"operator_id", requestcontext.Operator(ctx),
	)
	httputil.WriteJSON(w, http.StatusOK, toRunResponse(run))
}

// HandleStats handles GET /api/v1/admin/stats. Operator-only.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.pipeline.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"counts": counts})
}

// HandleIssueToken handles POST /api/v1/auth/token: operator key in, JWT out.
func (h *Handler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.Decode[tokenRequest](w, r)
	if !ok {
		return
	}
	if req.OperatorID == "" || req.OperatorKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "operator_id and operator_key are required"))
		return
	}
	if h.operatorKeyHash == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "operator access not configured"))
		return
	}
	if err := auth.VerifyKey(req.OperatorKey, h.operatorKeyHash); err != nil {
		h.logger.WarnContext(ctx, "operator key rejected", "operator_id", req.OperatorID)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid operator key"))
		return
	}

	const tokenTTL = time.Hour
	token, err := h.tokens.GenerateAccessToken(req.OperatorID, auth.RoleOperator, tokenTTL)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(tokenTTL.Seconds()),
	})
}

func (h *Handler) candidateID(w http.ResponseWriter, r *http.Request) (id.CandidateID, bool) {
	candidateID, err := id.ParseCandidateID(chi.URLParam(r, "candidateID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, err.Error()))
		return "", false
	}
	return candidateID, true
}
