package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/feeling-quotes/internal/platform/logging"
)

// Write operations follow Validate → Perform → Verify:
//   1. VALIDATE - check inputs before any state changes
//   2. PERFORM  - execute the operation against the store
//   3. VERIFY   - confirm the result is usable before reporting success

// ExecutionStep names a step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step  ExecutionStep
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Op, e.Step, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Operation defines the steps of one write use case. Nil steps are skipped.
type Operation[I, O any] struct {
	// Name identifies this operation for logging.
	Name string

	// Validate checks inputs. Return an error to abort before any state changes.
	Validate func(ctx context.Context, input I) error

	// Perform executes the operation.
	Perform func(ctx context.Context, input I) (O, error)

	// Verify confirms the performed result before it is returned.
	Verify func(ctx context.Context, input I, out O) error
}

// Executor runs operations with step-level logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Execute runs op against input, stopping at the first failing step.
func Execute[I, O any](ctx context.Context, exec *Executor, op Operation[I, O], input I) (O, error) {
	var zero O

	logger := exec.logger
	if ctxLogger := logging.FromContext(ctx); ctxLogger != nil && ctxLogger != slog.Default() {
		logger = ctxLogger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, err error) error {
		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, string(step)+" failed", slog.Any("error", err))

		return &ExecutionError{Step: step, Op: op.Name, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return zero, fail(StepValidate, err)
		}
	}

	if op.Perform == nil {
		return zero, fail(StepPerform, errors.New("no perform step defined"))
	}

	out, err := op.Perform(ctx, input)
	if err != nil {
		return zero, fail(StepPerform, err)
	}

	if op.Verify != nil {
		if err := op.Verify(ctx, input, out); err != nil {
			return zero, fail(StepVerify, err)
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}

// GetExecutionStep extracts the failing step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
