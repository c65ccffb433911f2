package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var steps []ExecutionStep

	op := Operation[int, int]{
		Name: "double",
		Validate: func(_ context.Context, in int) error {
			steps = append(steps, StepValidate)
			return nil
		},
		Perform: func(_ context.Context, in int) (int, error) {
			steps = append(steps, StepPerform)
			return in * 2, nil
		},
		Verify: func(_ context.Context, _ int, out int) error {
			steps = append(steps, StepVerify)
			return nil
		},
	}

	out, err := Execute(context.Background(), NewExecutor(discardLogger()), op, 21)

	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, []ExecutionStep{StepValidate, StepPerform, StepVerify}, steps)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	cause := errors.New("nope")
	performed := false

	op := Operation[string, string]{
		Name:     "reject",
		Validate: func(context.Context, string) error { return cause },
		Perform: func(context.Context, string) (string, error) {
			performed = true
			return "", nil
		},
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, "x")

	require.ErrorIs(t, err, cause)
	assert.False(t, performed)
	assert.Equal(t, "reject: validate failed: nope", err.Error())

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepValidate, step)
}

func TestExecute_MissingPerform(t *testing.T) {
	_, err := Execute(context.Background(), NewExecutor(nil), Operation[int, int]{Name: "empty"}, 1)

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepPerform, step)
}

func TestGetExecutionStep_PlainError(t *testing.T) {
	_, ok := GetExecutionStep(errors.New("plain"))
	assert.False(t, ok)
}
