package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Success(t *testing.T) {
	r := Success[int, string](42)
	assert.True(t, r.HasValue())
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, "", r.Err())
}

func TestResult_Failure(t *testing.T) {
	r := Failure[int, string]("oops")
	assert.False(t, r.HasValue())
	assert.Equal(t, "oops", r.Err())
	assert.Equal(t, 0, r.Value())
}

func TestResult_ZeroValueHasNoValue(t *testing.T) {
	var r Result[int, string]
	assert.False(t, r.HasValue())
}
