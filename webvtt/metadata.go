package webvtt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata rides inside NOTE blocks, which ordinary WebVTT consumers
// ignore. A NOTE line containing a sentinel carries a JSON object as
// the remainder of that line.
const (
	docMetaSentinel = "@meta"
	cueMetaSentinel = "@cue-meta"
)

type metaScope int

const (
	scopeNone metaScope = iota
	scopeDocument
	scopeCue
)

// decodeMetaBlock classifies a block as metadata. scopeNone means the
// block is not a metadata block at all (it may still be a plain NOTE
// comment). A recognized sentinel with an undecodable payload returns
// the scope and an error.
func decodeMetaBlock(block string) (metaScope, map[string]any, error) {
	lines := nonBlankLines(block)
	if len(lines) == 0 {
		return scopeNone, nil, nil
	}
	line := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(line, noteToken) {
		return scopeNone, nil, nil
	}
	var scope metaScope
	var sentinel string
	switch {
	case strings.Contains(line, cueMetaSentinel):
		scope, sentinel = scopeCue, cueMetaSentinel
	case strings.Contains(line, docMetaSentinel):
		scope, sentinel = scopeDocument, docMetaSentinel
	default:
		return scopeNone, nil, nil
	}
	payload := line[strings.Index(line, sentinel)+len(sentinel):]
	var meta map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &meta); err != nil {
		return scope, nil, fmt.Errorf("invalid %s payload: %w", sentinel, err)
	}
	return scope, meta, nil
}

// encodeMetaBlock renders a metadata mapping as a sentinel NOTE line.
// Any arrow token inside the serialized payload is stripped so the
// emitted line can never be mistaken for a timing line.
func encodeMetaBlock(sentinel string, meta map[string]any) (string, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	text := strings.ReplaceAll(string(payload), arrow, "")
	return noteToken + " " + sentinel + " " + text, nil
}

// mergeMeta overlays src onto dst, newer keys winning. Either side may
// be nil.
func mergeMeta(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
