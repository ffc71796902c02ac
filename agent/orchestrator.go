// Package agent implements the conversational project-generation
// orchestrator: a dialogue state machine that gathers project intent over
// six numbered steps, streams each assistant response incrementally, and
// finishes with a synthesis call that yields a structured project with a
// task breakdown.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/kickoff"
	"github.com/fwojciec/kickoff/tasks"
)

const (
	welcomeText = "Hi! I'll help you turn an idea into a project plan. " +
		"To start: what kind of project do you want to create?"

	apologyText = "Sorry, something went wrong while generating a response. " +
		"Your progress is saved, so please try that step again."
)

// Orchestrator is the dialogue state machine for one session. It owns the
// step counter, the transcript, the accumulated ProjectContext and the
// session identifier.
//
// An Orchestrator is not safe for concurrent use: one goroutine drives a
// session by calling SubmitTurn, which blocks until the assistant turn
// (and, after the last step, the synthesis) finishes. Streaming progress
// is observed through WithEventHandler. The only method safe to call from
// another goroutine is Cancel. Concurrent sessions each get their own
// instance; instances are never reused across sessions.
type Orchestrator struct {
	gen       kickoff.Generator
	extractor kickoff.ContextExtractor
	suggester kickoff.SuggestionGenerator
	model     string

	onEvent         func(kickoff.Event)
	onComplete      func(*kickoff.GeneratedProject, error)
	completionDelay time.Duration
	retryLimit      int

	sessionID  string
	startedAt  time.Time
	state      kickoff.State
	step       int
	pctx       kickoff.ProjectContext
	transcript transcript
	inFlight   bool
	failures   int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithExtractor replaces the default HeuristicExtractor.
func WithExtractor(e kickoff.ContextExtractor) Option {
	return func(o *Orchestrator) { o.extractor = e }
}

// WithSuggestions replaces the default StaticSuggestions table.
func WithSuggestions(s kickoff.SuggestionGenerator) Option {
	return func(o *Orchestrator) { o.suggester = s }
}

// WithModel sets the model ID for generation requests. Empty string means
// the generator uses its default model.
func WithModel(model string) Option {
	return func(o *Orchestrator) { o.model = model }
}

// WithEventHandler sets a callback that receives dialogue events,
// including one EventFragment per streamed fragment. If not set, events
// are silently discarded.
func WithEventHandler(h func(kickoff.Event)) Option {
	return func(o *Orchestrator) { o.onEvent = h }
}

// WithCompletionHandler sets the callback invoked exactly once when the
// session ends: with the generated project on success, or with a non-nil
// error on hard failure.
func WithCompletionHandler(h func(*kickoff.GeneratedProject, error)) Option {
	return func(o *Orchestrator) { o.onComplete = h }
}

// WithCompletionDelay sets a cosmetic pause between synthesis finishing
// and the completion handler firing, so the final message stays readable
// before the caller is notified. Default is zero.
func WithCompletionDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.completionDelay = d }
}

// WithRetryLimit caps consecutive generation failures on a single step.
// Once reached the session fails hard. Zero (the default) means no cap.
func WithRetryLimit(n int) Option {
	return func(o *Orchestrator) { o.retryLimit = n }
}

// New creates an Orchestrator and opens the dialogue: the welcome message
// is appended with the first step's suggestions and the machine enters
// the gathering state awaiting step 1.
func New(gen kickoff.Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		gen:       gen,
		extractor: kickoff.HeuristicExtractor{},
		suggester: kickoff.StaticSuggestions{},
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		state:     kickoff.StateIdle,
		step:      1,
	}
	for _, opt := range opts {
		opt(o)
	}

	// The welcome is appended without emitting events: callers read the
	// initial transcript through Messages() before the first turn.
	o.transcript.add(kickoff.Message{
		Role:        kickoff.RoleAssistant,
		Content:     welcomeText,
		Suggestions: o.suggester.Suggest(1, o.pctx),
	})
	o.state = kickoff.StateGathering
	return o
}

// SessionID returns the session's stable identifier.
func (o *Orchestrator) SessionID() string { return o.sessionID }

// State returns the current dialogue state.
func (o *Orchestrator) State() kickoff.State { return o.state }

// Step returns the step currently awaiting a user turn.
func (o *Orchestrator) Step() int { return o.step }

// Context returns the accumulated project context.
func (o *Orchestrator) Context() kickoff.ProjectContext { return o.pctx }

// Messages returns a copy of the transcript.
func (o *Orchestrator) Messages() []kickoff.Message { return o.transcript.snapshot() }

// Snapshot returns the session in its serializable form.
func (o *Orchestrator) Snapshot() kickoff.Session {
	return kickoff.Session{
		ID:        o.sessionID,
		Step:      o.step,
		State:     o.state,
		Context:   o.pctx,
		Messages:  o.transcript.snapshot(),
		StartedAt: o.startedAt,
	}
}

// SubmitTurn processes one user contribution. It appends the user
// message, extracts the current step's context contribution, streams the
// assistant response, and advances the step. After the last step it runs
// the synthesis and fires the completion handler before returning.
//
// Empty input returns ErrEmptyInput and a turn submitted while one is in
// flight returns ErrTurnInFlight; both leave the session untouched. A
// generation failure leaves the step counter unchanged so the same step
// can be retried.
func (o *Orchestrator) SubmitTurn(ctx context.Context, text string, voice bool) error {
	turn, ok := kickoff.NormalizeTurn(text, voice)
	if !ok {
		return kickoff.ErrEmptyInput
	}
	if o.inFlight {
		return kickoff.ErrTurnInFlight
	}
	if o.isDone() || o.state != kickoff.StateGathering {
		return kickoff.ErrSessionDone
	}
	o.inFlight = true
	defer func() { o.inFlight = false }()

	user := o.transcript.add(kickoff.Message{
		Role:    kickoff.RoleUser,
		Content: turn.Text,
		Source:  turn.Source,
	})
	o.emit(kickoff.EventMessageEnd{Message: user})

	o.pctx = o.pctx.Merge(o.extractor.Extract(o.step, turn.Text))

	req := kickoff.Request{
		SessionID: o.sessionID,
		Model:     o.model,
		Step:      o.step,
		UserInput: turn.Text,
		Context:   o.pctx,
	}
	final, err := o.streamInto(ctx, req, false)
	if err != nil {
		return o.turnFailed(err)
	}
	o.failures = 0

	if o.step < kickoff.StepCount {
		o.step++
		done := o.transcript.finalize(final, o.suggester.Suggest(o.step, o.pctx))
		o.emit(kickoff.EventMessageEnd{Message: done})
		o.emit(kickoff.EventStateChange{State: o.state, Step: o.step})
		return nil
	}

	// Last step answered: no suggestions on the closing reply, synthesis
	// follows immediately.
	done := o.transcript.finalize(final, nil)
	o.emit(kickoff.EventMessageEnd{Message: done})
	return o.synthesize(ctx)
}

// OnSuggestionSelected submits a quick-reply suggestion as a typed turn.
func (o *Orchestrator) OnSuggestionSelected(ctx context.Context, suggestion string) error {
	return o.SubmitTurn(ctx, suggestion, false)
}

// Cancel abandons the session. Any in-flight generation is cancelled and
// subsequent turns are rejected with ErrSessionDone. Safe to call from
// another goroutine.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	o.done = true
	cancel := o.cancel
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (o *Orchestrator) isDone() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// streamInto opens an in-flight assistant message, drives the generator
// stream through the fragment log, and writes the growing buffer into the
// message after every fragment. On failure the partial message is removed
// from the transcript and the error returned; on success the message is
// left streaming for the caller to finalize.
func (o *Orchestrator) streamInto(ctx context.Context, req kickoff.Request, synthesis bool) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.cancel = nil
		o.mu.Unlock()
	}()

	id := o.transcript.openStreaming(kickoff.RoleAssistant, synthesis)
	o.emit(kickoff.EventMessageBegin{ID: id, Role: kickoff.RoleAssistant})

	stream, err := o.gen.Stream(cctx, req)
	if err != nil {
		o.transcript.dropStreaming()
		return "", err
	}
	defer stream.Close()

	final, err := drain(stream, func(delta, full string) {
		o.transcript.setStreamingContent(full)
		o.emit(kickoff.EventFragment{Delta: delta})
	})
	if err != nil {
		o.transcript.dropStreaming()
		return "", err
	}
	return final, nil
}

// turnFailed records a context-gathering generation failure: a system
// apology is appended, the step counter stays put so the step can be
// retried, and the session only fails hard once the retry limit (if any)
// is exhausted.
func (o *Orchestrator) turnFailed(err error) error {
	apology := o.transcript.add(kickoff.Message{
		Role:    kickoff.RoleSystem,
		Content: apologyText,
	})
	o.emit(kickoff.EventMessageEnd{Message: apology})

	o.failures++
	wrapped := fmt.Errorf("step %d: %w", o.step, err)
	if o.retryLimit > 0 && o.failures >= o.retryLimit {
		o.state = kickoff.StateFailed
		o.emit(kickoff.EventStateChange{State: o.state, Step: o.step})
		o.complete(nil, wrapped)
	}
	return wrapped
}

// synthesize runs the final generation call with the completed context,
// streaming into a dedicated final message, and parses the task breakdown
// out of the result. A parsing shortfall is a partial success: a project
// with zero tasks still completes the session. Only a hard generator
// failure transitions to the failed state.
func (o *Orchestrator) synthesize(ctx context.Context) error {
	o.state = kickoff.StateSynthesizing
	o.emit(kickoff.EventStateChange{State: o.state, Step: o.step})

	full := o.pctx.WithDefaults()
	req := kickoff.Request{
		SessionID: o.sessionID,
		Model:     o.model,
		Synthesis: true,
		Context:   full,
	}
	text, err := o.streamInto(ctx, req, true)
	if err != nil {
		apology := o.transcript.add(kickoff.Message{
			Role:    kickoff.RoleSystem,
			Content: apologyText,
		})
		o.emit(kickoff.EventMessageEnd{Message: apology})
		o.state = kickoff.StateFailed
		o.emit(kickoff.EventStateChange{State: o.state, Step: o.step})
		wrapped := fmt.Errorf("synthesis: %w", err)
		o.complete(nil, wrapped)
		return wrapped
	}

	done := o.transcript.finalize(text, nil)
	o.emit(kickoff.EventMessageEnd{Message: done})

	project := &kickoff.GeneratedProject{
		Name:        full.Name,
		Description: full.Description,
		Tasks:       tasks.Parse(text),
		Metadata: kickoff.GenerationMetadata{
			SessionID: o.sessionID,
			Model:     o.model,
			Context:   full,
		},
	}

	o.state = kickoff.StateComplete
	o.emit(kickoff.EventStateChange{State: o.state, Step: o.step})

	if o.completionDelay > 0 {
		select {
		case <-time.After(o.completionDelay):
		case <-ctx.Done():
		}
	}
	o.complete(project, nil)
	return nil
}

func (o *Orchestrator) complete(p *kickoff.GeneratedProject, err error) {
	if o.onComplete != nil {
		o.onComplete(p, err)
	}
}

func (o *Orchestrator) emit(e kickoff.Event) {
	if o.onEvent != nil {
		o.onEvent(e)
	}
}
