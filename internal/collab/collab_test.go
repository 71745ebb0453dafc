package collab_test

import (
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/collab"
)

func TestIsTerminalFalseForNonFileWriter(t *testing.T) {
	var buf strings.Builder
	assert.False(t, collab.IsTerminal(&buf))
}

func TestIsTerminalFalseForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "collab-*.txt")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, collab.IsTerminal(f))
}

func TestIsTerminalFalseForNilWriter(t *testing.T) {
	assert.False(t, collab.IsTerminal(nil))
}
