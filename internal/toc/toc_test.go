package toc_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/JacobCrabill/zigdown-sub003/internal/ast"
	"github.com/JacobCrabill/zigdown-sub003/internal/parse"
	"github.com/JacobCrabill/zigdown-sub003/internal/toc"
)

func TestAnchorIDLowercasesAndDashesSpaces(t *testing.T) {
	assert.Equal(t, "getting-started", toc.AnchorID("Getting Started"))
}

func TestBuildNestsByHeadingLevel(t *testing.T) {
	doc, _ := parse.Parse([]byte("# Intro\n## Setup\n## Usage\n# Reference"), parse.Options{})
	top := toc.Build(doc)
	assert.Equal(t, ast.ContainerList, top.ContainerType)
	assert.Equal(t, 2, len(top.Children))

	intro := top.Children[0]
	assert.Equal(t, 2, len(intro.Children)) // link paragraph + nested sub-list
	sub := intro.Children[1]
	assert.Equal(t, ast.ContainerList, sub.ContainerType)
	assert.Equal(t, 2, len(sub.Children))

	reference := top.Children[1]
	assert.Equal(t, 1, len(reference.Children)) // no deeper heading beneath it
}

func TestBuildLinksToHeadingAnchors(t *testing.T) {
	doc, _ := parse.Parse([]byte("# Getting Started"), parse.Options{})
	top := toc.Build(doc)
	para := top.Children[0].Children[0]
	link := para.Inlines[0]
	assert.Equal(t, ast.InlineLink, link.Type)
	assert.Equal(t, "#getting-started", link.URL)
}
