package webvtt

import "strings"

// splitBlocks normalizes newlines, trims the document, and splits it on
// blank lines. The first returned block is the header. Never fails;
// empty input yields no blocks.
func splitBlocks(input string) []string {
	s := strings.ReplaceAll(input, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n\n")
	blocks := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		blocks = append(blocks, p)
	}
	return blocks
}

// nonBlankLines returns the block's lines with blank ones removed.
func nonBlankLines(block string) []string {
	lines := strings.Split(block, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
