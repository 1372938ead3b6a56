package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/texpress/internal/artifact"
	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

func TestGenerateAll_OncePerProjectInOrder(t *testing.T) {
	ops := &recordingOps{}
	cfg := testConfig()

	require.NoError(t, NewGenerator(ops).GenerateAll(context.Background(), cfg.Projects, artifact.Release("release")))

	require.Len(t, ops.calls, 3*len(cfg.Projects))
	for i, p := range cfg.Projects {
		assert.Equal(t, []string{
			"build:" + p.Main,
			"press:release:" + p.Name,
			"clean",
		}, ops.calls[i*3:i*3+3])
	}
}

func TestGenerateAll_AbortsOnFailure(t *testing.T) {
	ops := &recordingOps{
		failOn: "press:archive:slides",
		err:    ferrors.NotFoundError("PDF preprint not found!").Build(),
	}

	err := NewGenerator(ops).GenerateAll(context.Background(), testConfig().Projects, artifact.Archive)
	require.Error(t, err)
	assert.Equal(t, []string{
		"build:main.tex", "press:archive:paper", "clean",
		"build:slides.tex", "press:archive:slides",
	}, ops.calls)
}

func TestGenerateAll_NoProjects(t *testing.T) {
	ops := &recordingOps{}
	require.NoError(t, NewGenerator(ops).GenerateAll(context.Background(), nil, artifact.Archive))
	assert.Empty(t, ops.calls)
}
