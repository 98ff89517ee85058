package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariants(t *testing.T) {
	t.Parallel()

	loading := Loading[int]()
	assert.True(t, loading.IsLoading())
	assert.False(t, loading.IsTerminal())

	success := Success(42)
	assert.True(t, success.IsSuccess())
	assert.True(t, success.IsTerminal())
	assert.Equal(t, 42, success.Data)

	failure := Error[int]("boom")
	assert.True(t, failure.IsError())
	assert.True(t, failure.IsTerminal())
	assert.Equal(t, "boom", failure.Message)
}

func TestErrorNeverEmpty(t *testing.T) {
	t.Parallel()

	r := Error[string]("")
	assert.True(t, r.IsError())
	assert.NotEmpty(t, r.Message)
}

func TestSuccessWithEmptyCollection(t *testing.T) {
	t.Parallel()

	// An empty payload is still a Success, not an error.
	r := Success([]string{})
	assert.True(t, r.IsSuccess())
	assert.Empty(t, r.Data)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Success(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Data)

	mappedErr := Map(Error[int]("nope"), func(v int) string { return "unused" })
	assert.True(t, mappedErr.IsError())
	assert.Equal(t, "nope", mappedErr.Message)

	mappedLoading := Map(Loading[int](), func(v int) string { return "unused" })
	assert.True(t, mappedLoading.IsLoading())
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
}
