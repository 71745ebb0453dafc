package rendererr_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/rendererr"
)

func TestIOWrapsCauseAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := rendererr.IO(cause)
	assert.Equal(t, rendererr.RenderIO, err.Kind)
	assert.True(t, errors.Is(err, cause))
}

func TestFailRecordsCollaborator(t *testing.T) {
	cause := errors.New("highlight engine crashed")
	err := rendererr.Fail(rendererr.Highlight, cause)
	assert.Equal(t, rendererr.CollaboratorFail, err.Kind)
	assert.Equal(t, rendererr.Highlight, err.Collaborator)

	var target *rendererr.Error
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, err, target)
}
