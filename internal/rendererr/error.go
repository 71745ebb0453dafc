// Package rendererr defines the renderer-facing error taxonomy from
// spec.md §7: RenderIO (the sink failed), CollaboratorFail (highlight,
// image, or fetch failed), and OutOfMemory (fatal, no partial-emission
// guarantee beyond the last flushed top-level block).
package rendererr

import "fmt"

// Kind identifies which branch of the taxonomy a RenderError belongs to.
type Kind int

const (
	RenderIO Kind = iota
	CollaboratorFail
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case RenderIO:
		return "render_io"
	case CollaboratorFail:
		return "collaborator_fail"
	case OutOfMemory:
		return "out_of_memory"
	default:
		return "unknown"
	}
}

// Collaborator names which injected capability failed, for CollaboratorFail.
type Collaborator int

const (
	NoCollaborator Collaborator = iota
	Highlight
	ImageSend
	Fetch
)

func (c Collaborator) String() string {
	switch c {
	case Highlight:
		return "highlight"
	case ImageSend:
		return "image_send"
	case Fetch:
		return "fetch"
	default:
		return "none"
	}
}

// Error is the concrete RenderError type: renderers return this (never
// a bare string) so embedders can errors.As into it.
type Error struct {
	Kind         Kind
	Collaborator Collaborator
	Cause        error
}

func (e *Error) Error() string {
	if e.Collaborator != NoCollaborator {
		return fmt.Sprintf("render: %s (%s): %v", e.Kind, e.Collaborator, e.Cause)
	}
	return fmt.Sprintf("render: %s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// IO wraps a sink write failure as a RenderIO error.
func IO(cause error) *Error { return &Error{Kind: RenderIO, Cause: cause} }

// Fail wraps a failed collaborator call as a CollaboratorFail error.
// Renderers that hit this should still substitute a degraded rendering
// and continue per spec.md §7 — Fail exists for callers that want to
// observe the failure, not to force the renderer to abort.
func Fail(who Collaborator, cause error) *Error {
	return &Error{Kind: CollaboratorFail, Collaborator: who, Cause: cause}
}
