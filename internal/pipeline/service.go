// Package pipeline holds the gated screening orchestrator. It sequences the
// three stages, enforces token gating between them, converts stage errors
// into terminal auditable outcomes, and seals every decision into the
// integrity ledger.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"velos/internal/audit"
	"velos/internal/diff"
	"velos/internal/ledger"
	"velos/internal/pipeline/models"
	"velos/internal/pipeline/ports"
	"velos/internal/platform/metrics"
	id "velos/pkg/domain"
	dErrors "velos/pkg/domain-errors"
	"velos/pkg/platform/sentinel"
	"velos/pkg/requestcontext"
)

// Options tune orchestrator behavior. Zero values are replaced by defaults.
type Options struct {
	// MinAnswers is both the number of questions issued and the number of
	// answers required back.
	MinAnswers int
	// StageTimeout bounds each stage call; on expiry the stage fails and the
	// run terminates rather than hang.
	StageTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.MinAnswers <= 0 {
		o.MinAnswers = 3
	}
	if o.StageTimeout <= 0 {
		o.StageTimeout = 15 * time.Second
	}
}

// Service is the pipeline orchestrator. Runs for distinct candidates execute
// concurrently; within one run, stages are strictly sequential.
type Service struct {
	stageOne   ports.StageOne
	stageTwo   ports.StageTwo
	stageThree ports.StageThree
	evidence   ports.EvidenceSource
	diff       *diff.Engine
	ledger     ports.Ledger
	blocks     ports.BlockStore
	auditor    ports.AuditPort
	results    ports.ResultStore
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	opts       Options

	mu   sync.Mutex
	runs map[id.CandidateID]*runState
}

// runState is the in-process record of one run. Clean data lives only here;
// it is never persisted and never leaves the process.
type runState struct {
	mu   sync.Mutex
	run  models.CandidateRun
	data models.CleanData
	diff *diff.Report
}

func NewService(
	stageOne ports.StageOne,
	stageTwo ports.StageTwo,
	stageThree ports.StageThree,
	evidenceSource ports.EvidenceSource,
	ledgerManager ports.Ledger,
	blocks ports.BlockStore,
	auditor ports.AuditPort,
	results ports.ResultStore,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Service {
	opts.applyDefaults()
	return &Service{
		stageOne:   stageOne,
		stageTwo:   stageTwo,
		stageThree: stageThree,
		evidence:   evidenceSource,
		diff:       diff.NewEngine(),
		ledger:     ledgerManager,
		blocks:     blocks,
		auditor:    auditor,
		results:    results,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("velos/pipeline"),
		opts:       opts,
	}
}

// Submit starts a run: Stage 1, then (gated by the minted token) Stage 2,
// then Stage 3 question generation. The returned run is either terminal
// (rejected) or parked in QUESTIONS_PENDING.
func (s *Service) Submit(ctx context.Context, document, jobRequirements string, minYears float64) (models.CandidateRun, error) {
	candidateID := id.NewCandidateID(document)

	ctx, span := s.tracer.Start(ctx, "pipeline.Submit",
		trace.WithAttributes(attribute.String("candidate_id", string(candidateID))))
	defer span.End()

	state, err := s.createRun(candidateID)
	if err != nil {
		return models.CandidateRun{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	s.metrics.IncrementSubmitted()
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Action:      string(audit.EventRunSubmitted),
		Reason:      fmt.Sprintf("document length %d", len(document)),
	})

	// Stage 1: eligibility and anonymization.
	out1 := s.runStageOne(ctx, document, minYears)
	state.run.RecordStage(models.StageOneName, out1.Result)
	s.emitStage(ctx, candidateID, models.StageOneName, out1.Result)

	if out1.Result.Status == models.StageFail {
		s.finalizeRejection(ctx, state, models.StatusRejectedAtStage1, out1.Result.Reason)
		return state.run, nil
	}

	// The gate check does not trust the stage that minted the token: validate
	// structurally here before anything downstream runs. Stage 2 re-validates
	// on its side of the boundary.
	if err := out1.Token.Validate(); err != nil {
		s.finalizeRejection(ctx, state, models.StatusRejectedAtStage1,
			fmt.Sprintf("stage_1 error: malformed capability token: %v", err))
		return state.run, nil
	}

	// The diff is a pure audit artifact; it never gates control flow.
	report := s.diff.Compare(document, out1.CleanText)
	state.diff = &report
	state.data = out1.CleanData
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Stage:       models.StageOneName,
		Action:      string(audit.EventPIIRedacted),
		Reason:      fmt.Sprintf("redaction rate %.1f%%", report.Stats.RedactionRate),
	})
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Stage:       models.StageOneName,
		Action:      string(audit.EventTokenMinted),
	})

	if err := s.evidence.AddDocument(ctx, string(candidateID), out1.CleanText, "candidate_material"); err != nil {
		s.logger.Warn("evidence indexing failed, retrieval degraded",
			"candidate_id", candidateID, "error", err)
	}

	// Stage 2: requirement matching, gated on the token. Stage 2 re-checks
	// the token itself; the orchestrator does not bypass that.
	out2 := s.runStageTwo(ctx, models.StageTwoInput{
		CandidateID:  candidateID,
		CleanData:    out1.CleanData,
		Requirements: jobRequirements,
		Token:        out1.Token,
	})
	state.run.RecordStage(models.StageTwoName, out2.Result)
	s.emitStage(ctx, candidateID, models.StageTwoName, out2.Result)

	if out2.Result.Status == models.StageFail {
		s.finalizeRejection(ctx, state, models.StatusRejectedAtStage2, out2.Result.Reason)
		return state.run, nil
	}

	// Stage 3, first half: issue questions and park the run.
	questions, err := s.stageThree.GenerateQuestions(ctx, string(candidateID), out1.CleanData, s.opts.MinAnswers)
	if err != nil {
		s.finalizeRejection(ctx, state, models.StatusRejected,
			fmt.Sprintf("stage_3 error: %v", err))
		return state.run, nil
	}
	state.run.Questions = questions
	state.run.FinalStatus = models.StatusQuestionsPending
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Stage:       models.StageThreeName,
		Action:      string(audit.EventQuestionsIssued),
		Reason:      fmt.Sprintf("%d questions", len(questions)),
	})

	return state.run, nil
}

// SubmitAnswers completes a parked run: evaluates the answers, seals the
// decision regardless of outcome, and marks the run terminal.
func (s *Service) SubmitAnswers(ctx context.Context, candidateID id.CandidateID, pairs []models.QAPair) (models.CandidateRun, error) {
	ctx, span := s.tracer.Start(ctx, "pipeline.SubmitAnswers",
		trace.WithAttributes(attribute.String("candidate_id", string(candidateID))))
	defer span.End()

	state, err := s.pendingRun(candidateID)
	if err != nil {
		return models.CandidateRun{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.run.FinalStatus != models.StatusQuestionsPending {
		return models.CandidateRun{}, dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("run is %s, answers accepted only in %s", state.run.FinalStatus, models.StatusQuestionsPending))
	}
	if len(pairs) < s.opts.MinAnswers {
		return models.CandidateRun{}, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("expected %d answers, got %d", s.opts.MinAnswers, len(pairs)))
	}

	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Stage:       models.StageThreeName,
		Action:      string(audit.EventAnswersReceived),
		Reason:      fmt.Sprintf("%d answers", len(pairs)),
	})

	out3 := s.runStageThreeEval(ctx, state.data, pairs)
	state.run.RecordStage(models.StageThreeName, out3.Result)
	s.emitStage(ctx, candidateID, models.StageThreeName, out3.Result)

	final := models.StatusRejected
	action := audit.EventRunRejected
	if out3.Result.Status == models.StagePass {
		final = models.StatusApproved
		action = audit.EventRunApproved
	}
	state.run.FinalStatus = final
	state.run.FinalReason = out3.Result.Reason
	state.run.CompletedAt = time.Now().UTC()

	// Seal unconditionally: rejected decisions are sealed too, the ledger
	// records decisions, not successes.
	result := s.buildResult(state)
	snapshot := snapshotFromResult(result)
	block, sealErr := s.ledger.Seal(ctx, candidateID, snapshot)
	if sealErr != nil {
		// The decision stands; only the proof is missing.
		s.logger.Error("ledger seal failed", "candidate_id", candidateID, "error", sealErr)
	} else {
		state.run.TrustSeal = &block
		result.BlockID = block.BlockID
		s.emit(ctx, audit.Event{
			CandidateID: candidateID,
			Action:      string(audit.EventDecisionSealed),
			Reason:      block.BlockID,
		})
	}

	if err := s.results.SaveResult(ctx, result); err != nil {
		s.logger.Error("result persistence failed", "candidate_id", candidateID, "error", err)
	}
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Action:      string(action),
		Decision:    string(final),
		Reason:      out3.Result.Reason,
	})
	s.metrics.IncrementTerminal(string(final))

	return state.run, nil
}

// Abandon is the operator escape hatch for a run parked in
// QUESTIONS_PENDING. No decision was made, so nothing is sealed.
func (s *Service) Abandon(ctx context.Context, candidateID id.CandidateID, reason string) (models.CandidateRun, error) {
	state, err := s.pendingRun(candidateID)
	if err != nil {
		return models.CandidateRun{}, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.run.FinalStatus != models.StatusQuestionsPending {
		return models.CandidateRun{}, dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("run is %s, only %s runs can be abandoned", state.run.FinalStatus, models.StatusQuestionsPending))
	}

	state.run.FinalStatus = models.StatusAbandoned
	if reason == "" {
		reason = "abandoned by operator"
	}
	state.run.FinalReason = reason
	state.run.CompletedAt = time.Now().UTC()

	if err := s.results.SaveResult(ctx, s.buildResult(state)); err != nil {
		s.logger.Error("result persistence failed", "candidate_id", candidateID, "error", err)
	}
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Action:      string(audit.EventRunAbandoned),
		ActorID:     requestcontext.Operator(ctx),
		Reason:      reason,
	})
	s.metrics.IncrementTerminal(string(models.StatusAbandoned))

	return state.run, nil
}

// GetRun returns the current view of a run.
func (s *Service) GetRun(ctx context.Context, candidateID id.CandidateID) (models.CandidateRun, error) {
	s.mu.Lock()
	state, ok := s.runs[candidateID]
	s.mu.Unlock()
	if ok {
		state.mu.Lock()
		defer state.mu.Unlock()
		return state.run, nil
	}

	// Not in the arena: reconstruct the terminal view from storage.
	result, err := s.results.GetResult(ctx, candidateID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return models.CandidateRun{}, dErrors.New(dErrors.CodeNotFound, "no run for candidate")
	}
	if err != nil {
		return models.CandidateRun{}, err
	}
	return runFromResult(result), nil
}

// TrustPacket is the auditor-facing bundle: what was removed, the sealed
// block, and whether the stored decision still matches it.
type TrustPacket struct {
	CandidateID id.CandidateID `json:"candidate_id"`
	DiffReport  *diff.Report   `json:"diff_report,omitempty"`
	LedgerBlock *ledger.Block  `json:"ledger_block,omitempty"`
	Verified    bool           `json:"verified"`
	Detail      string         `json:"detail,omitempty"`
}

// GetTrustPacket assembles the trust packet. Trust-layer failures are
// reported inside the packet; they never invalidate the decision itself.
func (s *Service) GetTrustPacket(ctx context.Context, candidateID id.CandidateID) (TrustPacket, error) {
	packet := TrustPacket{CandidateID: candidateID}

	s.mu.Lock()
	state, ok := s.runs[candidateID]
	s.mu.Unlock()
	if ok {
		state.mu.Lock()
		packet.DiffReport = state.diff
		state.mu.Unlock()
	}

	block, err := s.blocks.LastByCandidate(ctx, candidateID)
	if errors.Is(err, sentinel.ErrNotFound) {
		if packet.DiffReport == nil {
			return TrustPacket{}, dErrors.New(dErrors.CodeNotFound, "no trust material for candidate")
		}
		packet.Detail = "no sealed decision yet"
		return packet, nil
	}
	if err != nil {
		packet.Detail = fmt.Sprintf("ledger unavailable: %v", err)
		return packet, nil
	}
	packet.LedgerBlock = &block

	report, err := s.verifyAgainstStored(ctx, candidateID, block)
	if err != nil {
		packet.Detail = fmt.Sprintf("verification unavailable: %v", err)
		return packet, nil
	}
	packet.Verified = report.Verified
	packet.Detail = report.Message
	return packet, nil
}

// VerifyIntegrity re-checks the stored decision against its sealed block and
// the candidate's whole chain. Mismatches are reported, never returned as
// errors.
func (s *Service) VerifyIntegrity(ctx context.Context, candidateID id.CandidateID) (ledger.Report, error) {
	block, err := s.blocks.LastByCandidate(ctx, candidateID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return ledger.Report{}, dErrors.New(dErrors.CodeNotFound, "no sealed decision for candidate")
	}
	if err != nil {
		return ledger.Report{}, err
	}

	report, err := s.verifyAgainstStored(ctx, candidateID, block)
	if err != nil {
		return ledger.Report{}, err
	}

	chain, err := s.blocks.ListByCandidate(ctx, candidateID)
	if err == nil {
		if ok, issues := s.ledger.VerifyChain(chain); !ok {
			report.Verified = false
			report.Message = fmt.Sprintf("TAMPERING_DETECTED: chain broken (%d issues)", len(issues))
		}
	}

	outcome := "verified"
	if !report.Verified {
		outcome = "tampering_detected"
		s.emit(ctx, audit.Event{
			CandidateID: candidateID,
			Action:      string(audit.EventIntegrityViolation),
			Reason:      report.Message,
		})
	}
	s.metrics.IncrementIntegrityCheck(outcome)
	return report, nil
}

// History returns the candidate's full audit trail.
func (s *Service) History(ctx context.Context, candidateID id.CandidateID) ([]audit.Event, error) {
	return s.results.ListByCandidate(ctx, candidateID)
}

// Stats summarizes terminal outcomes plus the live arena size.
func (s *Service) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.results.CountResultsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	pending := 0
	for _, state := range s.runs {
		if !state.run.FinalStatus.Terminal() {
			pending++
		}
	}
	s.mu.Unlock()
	counts["IN_FLIGHT"] = pending
	return counts, nil
}

func (s *Service) createRun(candidateID id.CandidateID) (*runState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runs == nil {
		s.runs = make(map[id.CandidateID]*runState)
	}
	if existing, ok := s.runs[candidateID]; ok && !existing.run.FinalStatus.Terminal() {
		return nil, dErrors.New(dErrors.CodeConflict, "run already in progress for this document")
	}
	state := &runState{
		run: models.CandidateRun{
			CandidateID: candidateID,
			FinalStatus: models.StatusPending,
			SubmittedAt: time.Now().UTC(),
		},
	}
	s.runs[candidateID] = state
	return state, nil
}

func (s *Service) pendingRun(candidateID id.CandidateID) (*runState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.runs[candidateID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "no run for candidate")
	}
	return state, nil
}

// runStageOne invokes Stage 1 under the stage timeout, converting any error
// into a synthetic FAIL result so the run always terminates auditably.
func (s *Service) runStageOne(ctx context.Context, document string, minYears float64) models.StageOneOutput {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StageTimeout)
	defer cancel()
	started := time.Now()
	out, err := s.stageOne.Process(ctx, document, minYears)
	s.metrics.ObserveStage(models.StageOneName, time.Since(started).Seconds())
	if err != nil {
		return models.StageOneOutput{Result: syntheticFail(models.StageOneName, err)}
	}
	return out
}

func (s *Service) runStageTwo(ctx context.Context, in models.StageTwoInput) models.StageTwoOutput {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StageTimeout)
	defer cancel()
	started := time.Now()
	out, err := s.stageTwo.Process(ctx, in)
	s.metrics.ObserveStage(models.StageTwoName, time.Since(started).Seconds())
	if err != nil {
		return models.StageTwoOutput{Result: syntheticFail(models.StageTwoName, err)}
	}
	return out
}

func (s *Service) runStageThreeEval(ctx context.Context, clean models.CleanData, pairs []models.QAPair) models.StageThreeOutput {
	ctx, cancel := context.WithTimeout(ctx, s.opts.StageTimeout)
	defer cancel()
	started := time.Now()
	out, err := s.stageThree.EvaluateAnswers(ctx, clean, pairs)
	s.metrics.ObserveStage(models.StageThreeName, time.Since(started).Seconds())
	if err != nil {
		return models.StageThreeOutput{Result: syntheticFail(models.StageThreeName, err)}
	}
	return out
}

func syntheticFail(stage string, err error) models.StageResult {
	return models.StageResult{
		Status:       models.StageFail,
		Reason:       fmt.Sprintf("%s error: %v", stage, err),
		AuditEntries: []string{"stage failed on internal error"},
	}
}

// finalizeRejection marks the run terminal without sealing: early rejections
// produce no decision block, matching the no-token no-seal cost policy.
func (s *Service) finalizeRejection(ctx context.Context, state *runState, status models.FinalStatus, reason string) {
	state.run.FinalStatus = status
	state.run.FinalReason = reason
	state.run.CompletedAt = time.Now().UTC()

	if err := s.results.SaveResult(ctx, s.buildResult(state)); err != nil {
		s.logger.Error("result persistence failed",
			"candidate_id", state.run.CandidateID, "error", err)
	}
	s.emit(ctx, audit.Event{
		CandidateID: state.run.CandidateID,
		Action:      string(audit.EventRunRejected),
		Decision:    string(status),
		Reason:      reason,
	})
	s.metrics.IncrementTerminal(string(status))
}

func (s *Service) buildResult(state *runState) audit.Result {
	run := state.run
	result := audit.Result{
		CandidateID: run.CandidateID,
		FinalStatus: string(run.FinalStatus),
		FinalReason: run.FinalReason,
		SubmittedAt: run.SubmittedAt,
		CompletedAt: run.CompletedAt,
	}
	if r, ok := run.StageResults[models.StageOneName]; ok {
		result.Stage1Status = string(r.Status)
	}
	if r, ok := run.StageResults[models.StageTwoName]; ok {
		result.Stage2Status = string(r.Status)
		if score, ok := r.Metrics["score"].(float64); ok {
			result.Stage2Score = score
		}
	}
	if r, ok := run.StageResults[models.StageThreeName]; ok {
		result.Stage3Status = string(r.Status)
		if score, ok := r.Metrics["authenticity_score"].(float64); ok {
			result.AuthenticityScore = score
		}
	}
	if r, ok := run.StageResults[models.StageThreeName]; ok {
		if n, ok := r.Metrics["red_flags_count"].(int); ok {
			result.RedFlagsCount = n
		}
	}
	return result
}

func snapshotFromResult(result audit.Result) ledger.Snapshot {
	return ledger.Snapshot{
		CandidateID:        string(result.CandidateID),
		FinalStatus:        result.FinalStatus,
		FinalReason:        result.FinalReason,
		Stage1Status:       result.Stage1Status,
		Stage2Status:       result.Stage2Status,
		Stage2Score:        result.Stage2Score,
		Stage3Status:       result.Stage3Status,
		AuthenticityScore:  result.AuthenticityScore,
		RedFlagsCount:      result.RedFlagsCount,
		SubmittedTimestamp: result.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}

func runFromResult(result audit.Result) models.CandidateRun {
	run := models.CandidateRun{
		CandidateID: result.CandidateID,
		FinalStatus: models.FinalStatus(result.FinalStatus),
		FinalReason: result.FinalReason,
		SubmittedAt: result.SubmittedAt,
		CompletedAt: result.CompletedAt,
	}
	if result.Stage1Status != "" {
		run.RecordStage(models.StageOneName, models.StageResult{
			Status: models.StageStatus(result.Stage1Status), Reason: "restored from storage",
		})
	}
	if result.Stage2Status != "" {
		run.RecordStage(models.StageTwoName, models.StageResult{
			Status: models.StageStatus(result.Stage2Status), Reason: "restored from storage",
			Metrics: map[string]any{"score": result.Stage2Score},
		})
	}
	if result.Stage3Status != "" {
		run.RecordStage(models.StageThreeName, models.StageResult{
			Status: models.StageStatus(result.Stage3Status), Reason: "restored from storage",
			Metrics: map[string]any{"authenticity_score": result.AuthenticityScore},
		})
	}
	return run
}

// verifyAgainstStored rebuilds the snapshot from the persisted result row
// and verifies it against the sealed block.
func (s *Service) verifyAgainstStored(ctx context.Context, candidateID id.CandidateID, block ledger.Block) (ledger.Report, error) {
	result, err := s.results.GetResult(ctx, candidateID)
	if err != nil {
		return ledger.Report{}, fmt.Errorf("load stored result: %w", err)
	}
	return s.ledger.Verify(block, snapshotFromResult(result)), nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.Error("audit emit failed", "action", event.Action, "error", err)
	}
}

func (s *Service) emitStage(ctx context.Context, candidateID id.CandidateID, stage string, result models.StageResult) {
	action := audit.EventStage1Completed
	switch stage {
	case models.StageTwoName:
		action = audit.EventStage2Completed
	case models.StageThreeName:
		action = audit.EventStage3Completed
	}
	s.emit(ctx, audit.Event{
		CandidateID: candidateID,
		Stage:       stage,
		Action:      string(action),
		Decision:    string(result.Status),
		Reason:      result.Reason,
	})
}
