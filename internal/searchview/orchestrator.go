package searchview

import (
	"context"
	"time"

	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"

	"github.com/Laisky/video-search/library/askapi"
	"github.com/Laisky/video-search/library/log"
)

// Asker sends a question to the answering API.
type Asker interface {
	Ask(ctx context.Context, question string) (*askapi.AskResponse, error)
}

// OrchestratorOption customises an Orchestrator during construction.
type OrchestratorOption func(*Orchestrator)

// WithLogger overrides the default logger.
func WithLogger(logger logSDK.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds each Execute call, zero disables the deadline.
func WithTimeout(timeout time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// Orchestrator performs exactly one API call per Request.
type Orchestrator struct {
	asker   Asker
	timeout time.Duration
	logger  logSDK.Logger
}

// NewOrchestrator wraps asker.
func NewOrchestrator(asker Asker, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		asker:  asker,
		logger: log.Logger.Named("orchestrator"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// Execute blocks until the request completes or ctx is done, never retries.
func (o *Orchestrator) Execute(ctx context.Context, req Request) Outcome {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	reqID := uuid.NewString()
	ctx = askapi.WithRequestID(ctx, reqID)
	logger := o.logger.With(
		zap.Uint64("seq", req.Seq),
		zap.String("request_id", reqID),
	)
	logger.Info("submit query", zap.String("query", req.Query))

	startAt := time.Now()
	resp, err := o.asker.Ask(ctx, req.Query)
	if err != nil {
		logger.Warn("query failed",
			zap.Error(err),
			zap.Duration("cost", time.Since(startAt)))
		return Outcome{Seq: req.Seq, Err: err}
	}

	result := NewResponse(resp)
	if result.Dropped > 0 {
		logger.Warn("skipped raw results without url",
			zap.Int("dropped", result.Dropped),
			zap.Int("kept", len(result.URLResults)))
	}
	logger.Info("query answered",
		zap.Int("results", len(result.URLResults)),
		zap.Int("tokens_used", result.TokensUsed),
		zap.Duration("cost", time.Since(startAt)))

	return Outcome{Seq: req.Seq, Response: result}
}

// Submit runs a complete submission synchronously: Submit, Execute, Resolve.
func (o *Orchestrator) Submit(ctx context.Context, state State, query string) (State, error) {
	next, req, err := state.Submit(query)
	if err != nil {
		return state, err
	}

	next, _ = next.Resolve(o.Execute(ctx, req))
	return next, nil
}
