package webvtt

import (
	"math"
	"strings"
)

// Compile renders a Document back to WebVTT text. Cues must carry valid
// field values and non-decreasing start times; any violation fails with
// a *CompilerError. Timestamps come out normalized (HH:MM:SS.mmm) and
// blocks are separated by exactly one blank line, so compiled output
// re-parses to the same cues and metadata.
func Compile(doc *Document, opts CompileOptions) (string, error) {
	if doc == nil {
		return "", &CompilerError{Index: -1, Msg: "no document to compile"}
	}
	if opts.Strict && !doc.Valid {
		return "", &CompilerError{Index: -1, Msg: "document has parse errors, refusing strict compile"}
	}

	blocks := []string{signature}
	if len(doc.Meta) > 0 {
		b, err := encodeMetaBlock(docMetaSentinel, doc.Meta)
		if err != nil {
			return "", &CompilerError{Index: -1, Field: "meta", Msg: "document metadata not serializable: " + err.Error()}
		}
		blocks = append(blocks, b)
	}

	lastStart := 0.0
	for i, cue := range doc.Cues {
		if err := validateCue(cue, i, opts.Strict); err != nil {
			return "", err
		}
		if cue.Start < lastStart {
			return "", &CompilerError{Index: i, Field: "start", Msg: "cue not in chronological order"}
		}
		lastStart = cue.Start

		if len(cue.Meta) > 0 {
			b, err := encodeMetaBlock(cueMetaSentinel, cue.Meta)
			if err != nil {
				return "", &CompilerError{Index: i, Field: "meta", Msg: "cue metadata not serializable: " + err.Error()}
			}
			blocks = append(blocks, b)
		}

		var lines []string
		if cue.Identifier != "" {
			lines = append(lines, cue.Identifier)
		}
		timing := FormatTimestamp(cue.Start) + " " + arrow + " " + FormatTimestamp(cue.End)
		if cue.Styles != "" {
			timing += " " + cue.Styles
		}
		lines = append(lines, timing)
		if cue.Text != "" {
			lines = append(lines, cue.Text)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func validateCue(cue Cue, index int, strict bool) *CompilerError {
	if math.IsNaN(cue.Start) {
		return &CompilerError{Index: index, Field: "start", Msg: "cue start is not a number"}
	}
	if math.IsNaN(cue.End) {
		return &CompilerError{Index: index, Field: "end", Msg: "cue end is not a number"}
	}
	if cue.Start < 0 {
		return &CompilerError{Index: index, Field: "start", Msg: "cue start must not be negative"}
	}
	if strict && cue.End <= cue.Start {
		return &CompilerError{Index: index, Field: "end", Msg: "cue end must be greater than its start"}
	}
	return nil
}
