package pipeline

import (
	"context"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
)

// TokenFunc lets the streaming stage surface incremental output while it is
// still running. Non-streaming stages ignore it.
type TokenFunc func(text string)

// Stage is one pipeline step: it reads the current state and returns its
// partial update. A returned error is a hard fault that stops the run.
type Stage interface {
	Name() string
	Run(ctx context.Context, current State, emit TokenFunc) (Update, error)
}

// Engine drives one State through the fixed stage order (interpret,
// retrieve, synthesize), emitting lifecycle events as it goes.
// An Engine is cheap to build; create one per request and call Run once.
type Engine struct {
	stages []Stage
	logger logger.ILogger
}

func NewEngine(log logger.ILogger, stages ...Stage) *Engine {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Engine{
		stages: stages,
		logger: log,
	}
}

// Run executes the pipeline for one request and returns the event sequence.
// The channel is unbuffered (events are delivered as they happen) and closed
// after RunFinished. Stages run strictly sequentially; each stage's input is
// the merged output of everything before it. On cancellation no further
// events are emitted.
func (e *Engine) Run(ctx context.Context, initial State) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		// send delivers one event unless the run was cancelled.
		send := func(ev Event) bool {
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		current := initial

		for _, stage := range e.stages {
			if !send(StageStarted{Stage: stage.Name()}) {
				return
			}

			e.logger.Debug("Pipeline", "Stage started", map[string]interface{}{"stage": stage.Name()})

			emit := func(text string) {
				send(TokenEmitted{Text: text})
			}

			update, err := stage.Run(ctx, current, emit)
			if err != nil {
				e.logger.Error("Pipeline", "Stage failed", map[string]interface{}{
					"stage": stage.Name(),
					"error": err.Error(),
				})
				current = current.Apply(Update{Error: err.Error()})
				send(StageFailed{Stage: stage.Name(), Err: err})
				break
			}

			current = current.Apply(update)
			if !send(StageCompleted{Stage: stage.Name(), Update: update, State: current}) {
				return
			}
		}

		send(RunFinished{Final: current})
	}()

	return events
}
