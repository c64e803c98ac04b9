package autodiff

import (
	"github.com/Mourtz/slangpy/internal/autodiff/ops"
	"github.com/Mourtz/slangpy/internal/scalar"
	"github.com/Mourtz/slangpy/internal/vec"
)

// Tape records operations during the forward pass and computes gradients
// during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewTape[float32]()
//	tape.StartRecording()
//	// ... perform operations ...
//	gradients := tape.Backward(outputGrad)
type Tape[T scalar.Float] struct {
	operations []ops.Operation[T] // Recorded operations (in execution order)
	recording  bool               // Whether the tape is currently recording
}

// NewTape creates a new gradient tape.
func NewTape[T scalar.Float]() *Tape[T] {
	return &Tape[T]{
		operations: make([]ops.Operation[T], 0, 16),
	}
}

// StartRecording enables operation recording.
func (t *Tape[T]) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *Tape[T]) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape[T]) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape. Only records while recording.
func (t *Tape[T]) Record(op ops.Operation[T]) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *Tape[T]) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape[T]) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients for all inputs by walking the tape in reverse.
//
// Algorithm:
//  1. Seed the last operation's output with outputGrad (typically ones).
//  2. Walk operations in reverse order.
//  3. For each operation, compute input gradients via its backward rule.
//  4. Accumulate lane-wise when the same vector feeds multiple operations.
//
// Returns a map from vector identity to its accumulated gradient.
func (t *Tape[T]) Backward(outputGrad *vec.Vector[T]) map[*vec.Vector[T]]*vec.Vector[T] {
	grads := make(map[*vec.Vector[T]]*vec.Vector[T])
	if len(t.operations) == 0 {
		return grads
	}

	// Stop recording during backward so gradient math is not taped.
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	lastOp := t.operations[len(t.operations)-1]
	grads[lastOp.Output()] = outputGrad

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			// No gradient flows to this operation.
			continue
		}
		inputGrads := op.Backward(outGrad)
		t.accumulate(op.Inputs(), inputGrads, grads)
	}

	return grads
}

// accumulate adds each input gradient into the gradient map, summing
// lane-wise with any gradient already present for that vector.
func (t *Tape[T]) accumulate(
	inputs []*vec.Vector[T],
	inputGrads []*vec.Vector[T],
	grads map[*vec.Vector[T]]*vec.Vector[T],
) {
	for j, input := range inputs {
		if j >= len(inputGrads) || inputGrads[j] == nil {
			continue
		}
		existing, ok := grads[input]
		if !ok {
			grads[input] = inputGrads[j]
			continue
		}
		eData := existing.Data()
		for i, g := range inputGrads[j].Data() {
			eData[i] += g
		}
	}
}
