package webvtt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// timestampRe matches [HH:]MM:SS.mmm: hours optional and variable
// width, minutes/seconds two digits, 2-3 fractional digits.
var timestampRe = regexp.MustCompile(`^(\d+:)?(\d{2}):(\d{2})\.(\d{2,3})$`)

// validTimestamp reports whether s is a well-formed cue timestamp.
func validTimestamp(s string) bool {
	return timestampRe.MatchString(s)
}

// parseTimestamp converts a valid timestamp into seconds. Returns 0 for
// input that validTimestamp rejects; callers check first.
func parseTimestamp(s string) float64 {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	var hours int
	if m[1] != "" {
		hours, _ = strconv.Atoi(strings.TrimSuffix(m[1], ":"))
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])
	if len(m[4]) == 2 {
		millis *= 10
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// FormatTimestamp renders seconds as HH:MM:SS.mmm, rounded to the
// nearest millisecond. Negative input clamps to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(math.Round(seconds * 1000))
	h := total / 3600000
	m := total / 60000 % 60
	s := total / 1000 % 60
	ms := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
