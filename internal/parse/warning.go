package parse

import "fmt"

// Warning is a recoverable parsing oddity (spec §7's ParseWarn). The only
// one the parser reports is a fenced code block still open when the input
// or its enclosing container ends; malformed tables are not reported. The
// parser always keeps producing a tree; warnings are collected alongside it.
type Warning struct {
	Line    int
	Message string
}

// Error implements the error interface so a Warning can be passed to any
// API expecting one, even though Parse never returns it as a failure.
func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %s", w.Line+1, w.Message)
}

// Options configures a Parse call.
type Options struct {
	// Warn, if set, is invoked once per Warning as it is produced — the
	// diagnostic logger hook described in spec §7. Parse still returns
	// the full slice regardless of whether Warn is set.
	Warn func(string)
}

func (o Options) warn(w Warning) {
	if o.Warn != nil {
		o.Warn(w.Error())
	}
}
