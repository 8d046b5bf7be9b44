package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTaskStatus(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidTaskStatus(StatusTodo))
	assert.True(t, IsValidTaskStatus(StatusInProgress))
	assert.True(t, IsValidTaskStatus(StatusCompleted))

	// "done" was used historically by some clients; only "completed" is
	// accepted.
	assert.False(t, IsValidTaskStatus("done"))
	assert.False(t, IsValidTaskStatus(""))
	assert.False(t, IsValidTaskStatus("TODO"))
}

func TestIsValidTaskPriority(t *testing.T) {
	t.Parallel()
	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		assert.True(t, IsValidTaskPriority(p))
	}
	assert.False(t, IsValidTaskPriority("critical"))
	assert.False(t, IsValidTaskPriority(""))
}
