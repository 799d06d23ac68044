package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/subkit/vttcheck/webvtt"
)

// Build renders a parse result as markdown for the review screen.
func Build(name string, doc *webvtt.Document) string {
	sb := strings.Builder{}
	sb.WriteString("\n\n# vttcheck\n\n")
	sb.WriteString("## " + name + "\n\n")
	verdict := "valid"
	if !doc.Valid {
		verdict = "INVALID"
	}
	fmt.Fprintf(&sb, "%s: %d cues, %d errors\n\n", verdict, len(doc.Cues), len(doc.Errors))

	if len(doc.Meta) > 0 {
		sb.WriteString("## Document metadata\n")
		sb.WriteString("| Key | Value |\n| --- | --- |\n")
		keys := make([]string, 0, len(doc.Meta))
		for k := range doc.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "| %s | %v |\n", k, doc.Meta[k])
		}
		sb.WriteString("\n")
	}

	if len(doc.Errors) > 0 {
		sb.WriteString("## Errors\n")
		sb.WriteString("| Cue# | Problem |\n| --- | --- |\n")
		for _, e := range doc.Errors {
			fmt.Fprintf(&sb, "| %d | %s |\n", e.Index, e.Msg)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Cues\n")
	if len(doc.Cues) == 0 {
		sb.WriteString("Nothing here...\n")
		return sb.String()
	}
	sb.WriteString("| Id | Start | End | Text |\n| --- | --- | --- | --- |\n")
	for _, cue := range doc.Cues {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			cue.Identifier,
			webvtt.FormatTimestamp(cue.Start),
			webvtt.FormatTimestamp(cue.End),
			strings.ReplaceAll(cue.Text, "\n", " "))
	}
	return sb.String()
}
