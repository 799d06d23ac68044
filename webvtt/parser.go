package webvtt

import (
	"strconv"
	"strings"
)

// Parse parses a WebVTT document. Header defects always fail with a
// *StructuralError. Cue defects fail with a *CueError in strict mode;
// in lenient mode they are collected on the Document, which is then
// returned with Valid=false.
func Parse(input string, opts ParseOptions) (*Document, error) {
	blocks := splitBlocks(input)
	if len(blocks) == 0 {
		return nil, &StructuralError{Msg: "missing WEBVTT signature"}
	}

	doc := &Document{Valid: true, Strict: opts.Strict}
	if err := parseHeader(doc, blocks[0], opts.Meta); err != nil {
		return nil, err
	}

	// Cue metadata is pending state: it attaches to the next cue that
	// parses, and is dropped if no cue follows.
	var pending map[string]any
	for _, block := range blocks[1:] {
		scope, meta, err := decodeMetaBlock(block)
		if err != nil {
			cueErr := &CueError{Index: len(doc.Cues), Msg: err.Error()}
			if opts.Strict {
				return nil, cueErr
			}
			doc.Valid = false
			doc.Errors = append(doc.Errors, *cueErr)
			continue
		}
		switch scope {
		case scopeDocument:
			doc.Meta = mergeMeta(doc.Meta, meta)
			continue
		case scopeCue:
			pending = mergeMeta(pending, meta)
			continue
		}

		cue, cueErr := parseCueBlock(block, len(doc.Cues), opts.Strict)
		if cueErr != nil {
			if opts.Strict {
				return nil, cueErr
			}
			doc.Valid = false
			doc.Errors = append(doc.Errors, *cueErr)
			continue
		}
		if cue == nil {
			// Plain comment, or a cue with no body.
			continue
		}
		cue.Meta = pending
		pending = nil
		doc.Cues = append(doc.Cues, *cue)
	}
	return doc, nil
}

// parseHeader validates the signature block. With metaMode, extra
// header lines are "key: value" pairs merged into doc.Meta; without it
// they are a structural error.
func parseHeader(doc *Document, header string, metaMode bool) error {
	lines := strings.Split(header, "\n")
	first := lines[0]
	if !strings.HasPrefix(first, signature) {
		return &StructuralError{Msg: "missing WEBVTT signature"}
	}
	comment := first[len(signature):]
	if comment != "" && comment[0] != ' ' && comment[0] != '\t' {
		return &StructuralError{Msg: "header comment must start with a space or tab"}
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !metaMode {
			return &StructuralError{Msg: "missing blank line after signature"}
		}
		key, value, _ := strings.Cut(line, ":")
		if doc.Meta == nil {
			doc.Meta = make(map[string]any)
		}
		doc.Meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

// parseCueBlock parses one candidate cue block. A nil, nil return means
// the block yields no cue and no error: a plain NOTE comment, or a cue
// whose body text came out empty.
func parseCueBlock(block string, index int, strict bool) (*Cue, *CueError) {
	lines := nonBlankLines(block)
	if strings.HasPrefix(strings.TrimSpace(lines[0]), noteToken) {
		return nil, nil
	}

	cue := &Cue{Identifier: strconv.Itoa(index)}
	timing := lines[0]
	body := lines[1:]
	if !strings.Contains(lines[0], arrow) {
		if len(lines) == 1 {
			return nil, &CueError{Index: index, Msg: "cue identifier cannot be standalone"}
		}
		if !strings.Contains(lines[1], arrow) {
			return nil, &CueError{Index: index, Msg: "cue identifier needs to be followed by timestamp"}
		}
		cue.Identifier = strings.TrimSpace(lines[0])
		timing = lines[1]
		body = lines[2:]
	}

	startRaw, rest, _ := strings.Cut(timing, arrow)
	startRaw = strings.TrimSpace(startRaw)
	rest = strings.TrimSpace(rest)
	endRaw := rest
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		endRaw = rest[:i]
		cue.Styles = strings.TrimSpace(rest[i+1:])
	}
	if !validTimestamp(startRaw) || !validTimestamp(endRaw) {
		return nil, &CueError{Index: index, Msg: "invalid cue timestamp"}
	}
	cue.Start = parseTimestamp(startRaw)
	cue.End = parseTimestamp(endRaw)
	if strict && cue.End <= cue.Start {
		return nil, &CueError{Index: index, Msg: "cue end must be greater than its start"}
	}
	if !strict && cue.End < cue.Start {
		return nil, &CueError{Index: index, Msg: "cue end must not precede its start"}
	}

	cue.Text = strings.Join(body, "\n")
	if cue.Text == "" {
		return nil, nil
	}
	return cue, nil
}
