package webvtt

import "fmt"

// StructuralError reports a malformed document skeleton: a missing
// WEBVTT signature or a broken header. It is fatal to the call in every
// mode.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return e.Msg }

// CueError reports a single malformed cue block. Index is the 0-based
// position the cue holds (or would have held) in Document.Cues. Strict
// parses fail on the first CueError; lenient parses collect them on the
// Document.
type CueError struct {
	Index int
	Msg   string
}

func (e *CueError) Error() string { return fmt.Sprintf("%s (cue #%d)", e.Msg, e.Index) }

// CompilerError reports a Document that cannot be compiled: invalid
// field values or cues out of chronological order. Index is the
// offending cue's position, or -1 for document-level failures. Field
// names the offending cue field when one is to blame.
type CompilerError struct {
	Index int
	Field string
	Msg   string
}

func (e *CompilerError) Error() string {
	if e.Index < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (cue #%d)", e.Msg, e.Index)
}
