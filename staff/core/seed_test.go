package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTaskCatalog(t *testing.T) {
	assert.Len(t, DefaultTasks, 8)

	base := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	for _, task := range DefaultTasks {
		_, err := ParseTimeOnDate(base, task.StartTime)
		assert.NoError(t, err, "start window of %q", task.Name)
		_, err = ParseTimeOnDate(base, task.EndTime)
		assert.NoError(t, err, "end window of %q", task.Name)
		assert.NotEmpty(t, task.Name)
	}
}
