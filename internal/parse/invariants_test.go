package parse_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
)

func TestParsedTreesSatisfyStructuralInvariants(t *testing.T) {
	corpus := []string{
		"",
		"# Title\n\nParagraph one.\n\nParagraph two.",
		"- one\n- two\n  - three\n  - four",
		"1. a\n2. b\n3. c",
		"- [ ] todo\n- [X] done",
		"> quote line\n> continues",
		"> [!WARNING]\n> careful",
		"| a | b |\n|---|---|\n| 1 | 2 |",
		"```go\nfunc f() {}\n```",
		"```\nunclosed",
		"plain *em* and **strong** and `code` and [link](url) and <http://x>",
		"line one  \nline two",
	}
	for _, src := range corpus {
		doc, _ := parse.Parse([]byte(src), parse.Options{})
		assert.NoError(t, ast.CheckInvariants(doc))
	}
}
