package scenario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
	"git.home.luguber.info/inful/texpress/internal/metrics"
)

func TestDispatcher_RunsDocumentedSequences(t *testing.T) {
	tests := []struct {
		keyword string
		calls   []string
	}{
		{"build", []string{"build:main.tex"}},
		{"clean", []string{"clean"}},
		{"rm", []string{"remove"}},
		{"press", []string{"press:release:paper"}},
		{"release", []string{"build:main.tex", "press:release:paper", "clean"}},
		{"all", []string{
			"build:main.tex", "press:release:paper", "clean",
			"build:slides.tex", "press:release:slides", "clean",
			"build:poster.tex", "press:release:poster", "clean",
		}},
		{"tmp", []string{"build:main.tex", "press:archive:paper", "clean"}},
		{"archive", []string{"build:main.tex", "press:archive:paper", "clean"}},
		{"open", []string{"open"}},
		{"dev", []string{"build:main.tex", "open"}},
		{"fmt", []string{"fmt"}},
		{"lint", []string{"lint"}},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			ops := &recordingOps{}
			require.NoError(t, NewDispatcher(testConfig(), ops).Run(context.Background(), tt.keyword))
			assert.Equal(t, tt.calls, ops.calls)
		})
	}
}

func TestDispatcher_EveryKeywordIsWired(t *testing.T) {
	d := NewDispatcher(testConfig(), &recordingOps{})
	for _, k := range Keywords() {
		steps, err := d.Steps(k)
		require.NoError(t, err, k)
		assert.NotEmpty(t, steps, k)
	}
}

func TestDispatcher_Steps(t *testing.T) {
	d := NewDispatcher(testConfig(), &recordingOps{})

	steps, err := d.Steps("release")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "press", "clean"}, steps)

	steps, err = d.Steps("tmp")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "press-archive", "clean"}, steps)

	steps, err = d.Steps("dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "open"}, steps)
}

func TestDispatcher_DefaultsToBuild(t *testing.T) {
	ops := &recordingOps{}
	require.NoError(t, NewDispatcher(testConfig(), ops).Run(context.Background(), ""))
	assert.Equal(t, []string{"build:main.tex"}, ops.calls)
}

func TestDispatcher_UnknownKeyword(t *testing.T) {
	ops := &recordingOps{}
	err := NewDispatcher(testConfig(), ops).Run(context.Background(), "publish")
	require.Error(t, err)
	assert.Empty(t, ops.calls)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryValidation, classified.Category())
	for _, k := range Keywords() {
		assert.Contains(t, classified.Message(), k)
	}
	scenario, _ := classified.Context().GetString("scenario")
	assert.Equal(t, "publish", scenario)
}

func TestDispatcher_StopsAtFirstFailure(t *testing.T) {
	missing := ferrors.NotFoundError("PDF preprint not found!").Build()
	ops := &recordingOps{failOn: "press:release:paper", err: missing}

	err := NewDispatcher(testConfig(), ops).Run(context.Background(), "release")
	require.Error(t, err)
	assert.True(t, errors.Is(err, missing))
	assert.Equal(t, []string{"build:main.tex", "press:release:paper"}, ops.calls)
}

type countingRecorder struct {
	steps     []string
	results   []string
	scenarios []string
}

func (c *countingRecorder) ObserveStepDuration(step string, _ time.Duration) {
	c.steps = append(c.steps, step)
}

func (c *countingRecorder) IncStepResult(step string, result metrics.ResultLabel) {
	c.results = append(c.results, step+"="+string(result))
}

func (c *countingRecorder) ObserveScenarioDuration(string, time.Duration) {}

func (c *countingRecorder) IncScenarioOutcome(scenario string, result metrics.ResultLabel) {
	c.scenarios = append(c.scenarios, scenario+"="+string(result))
}

func TestDispatcher_RecordsMetrics(t *testing.T) {
	rec := &countingRecorder{}
	ops := &recordingOps{failOn: "clean", err: errors.New("permission denied")}

	err := NewDispatcher(testConfig(), ops).WithRecorder(rec).Run(context.Background(), "release")
	require.Error(t, err)

	assert.Equal(t, []string{"build", "press", "clean"}, rec.steps)
	assert.Equal(t, []string{"build=success", "press=success", "clean=failed"}, rec.results)
	assert.Equal(t, []string{"release=failed"}, rec.scenarios)
}

func TestDispatcher_RunIDPerRun(t *testing.T) {
	d := NewDispatcher(testConfig(), &recordingOps{})
	var ids []string
	d.newRunID = func() string {
		id := "run-" + string(rune('a'+len(ids)))
		ids = append(ids, id)
		return id
	}
	require.NoError(t, d.Run(context.Background(), "build"))
	require.NoError(t, d.Run(context.Background(), "clean"))
	assert.Equal(t, []string{"run-a", "run-b"}, ids)
}
