// Package webvtt parses WebVTT subtitle documents into structured values
// and compiles them back to text. Well-formed input round-trips: parsing
// the output of Compile yields the same cues and metadata.
//
// Besides the standard cue grammar it supports an out-of-band metadata
// channel: NOTE blocks carrying a reserved sentinel ("@meta" for
// document scope, "@cue-meta" for cue scope) followed by a JSON object.
// Plain NOTE blocks are discarded as comments, so the channel is
// invisible to other WebVTT consumers.
package webvtt

const (
	signature = "WEBVTT"
	arrow     = "-->"
	noteToken = "NOTE"
)

// ParseOptions controls Parse. The zero value is lenient and ignores
// header metadata; use DefaultParseOptions for the strict default.
type ParseOptions struct {
	// Strict makes the first malformed cue abort the parse. When false,
	// cue errors are collected on the Document and parsing continues.
	Strict bool
	// Meta enables "key: value" header lines after the signature,
	// merged into Document.Meta. Without it a non-blank second header
	// line is a structural error.
	Meta bool
}

// DefaultParseOptions returns the default parse mode: strict, no header
// metadata.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Strict: true}
}

// CompileOptions controls Compile.
type CompileOptions struct {
	// Strict refuses to compile a Document that carries parse errors.
	Strict bool
}

// DefaultCompileOptions returns the default compile mode: strict.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{Strict: true}
}

// Document is a parsed WebVTT file. Valid is true iff Errors is empty;
// a strict parse never returns an invalid Document (it fails instead).
type Document struct {
	Valid  bool
	Strict bool
	Cues   []Cue
	Errors []CueError
	// Meta holds document-scope metadata: sentinel NOTE blocks, plus
	// header lines when parsed with ParseOptions.Meta.
	Meta map[string]any
}

// Cue is one timed text entry.
type Cue struct {
	// Identifier is the cue's explicit label, or the decimal string of
	// its 0-based position when the input supplied none.
	Identifier string
	// Start and End are offsets in seconds.
	Start float64
	End   float64
	// Text is the cue body. A cue whose body parses empty is dropped,
	// so Text is never empty on a parsed cue.
	Text string
	// Styles is the verbatim remainder of the timing line after the end
	// timestamp. Opaque to this package.
	Styles string
	// Meta holds metadata from a sentinel NOTE block immediately
	// preceding the cue. Nil if there was none.
	Meta map[string]any
}
