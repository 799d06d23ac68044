package webvtt

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestCompileEmptyDocument(t *testing.T) {
	out, err := Compile(&Document{Valid: true}, DefaultCompileOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if out != "WEBVTT\n" {
		t.Errorf("out = [%v], want [WEBVTT\\n]", out)
	}
}

func TestCompileNilDocument(t *testing.T) {
	_, err := Compile(nil, DefaultCompileOptions())
	var compErr *CompilerError
	if !errors.As(err, &compErr) {
		t.Fatalf("Compile(nil) error = %v, want CompilerError", err)
	}
}

func TestCompileMetaRoundTrip(t *testing.T) {
	doc := &Document{Valid: true, Meta: map[string]any{"lang": "en"}}
	out, err := Compile(doc, DefaultCompileOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	// The sentinel channel works without the Meta parse option.
	back, err := Parse(out, ParseOptions{Strict: true, Meta: false})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(back.Meta, doc.Meta) {
		t.Errorf("recovered meta = %v, want %v", back.Meta, doc.Meta)
	}
}

func TestCompileChronology(t *testing.T) {
	doc := &Document{Valid: true, Cues: []Cue{
		{Identifier: "0", Start: 5, End: 6, Text: "late"},
		{Identifier: "1", Start: 2, End: 3, Text: "early"},
	}}
	_, err := Compile(doc, DefaultCompileOptions())
	var compErr *CompilerError
	if !errors.As(err, &compErr) {
		t.Fatalf("Compile() error = %v, want CompilerError", err)
	}
	if compErr.Index != 1 {
		t.Errorf("compErr.Index = %d, want 1", compErr.Index)
	}
	if !strings.Contains(compErr.Msg, "chronological") {
		t.Errorf("compErr.Msg = [%v], want chronological order complaint", compErr.Msg)
	}
}

func TestCompileValidation(t *testing.T) {
	tests := []struct {
		name      string
		cue       Cue
		strict    bool
		wantField string
	}{
		{
			name:      "nan start",
			cue:       Cue{Start: math.NaN(), End: 1, Text: "x"},
			strict:    true,
			wantField: "start",
		},
		{
			name:      "nan end",
			cue:       Cue{Start: 0, End: math.NaN(), Text: "x"},
			strict:    true,
			wantField: "end",
		},
		{
			name:      "negative start",
			cue:       Cue{Start: -1, End: 1, Text: "x"},
			strict:    true,
			wantField: "start",
		},
		{
			name:      "strict zero duration",
			cue:       Cue{Start: 1, End: 1, Text: "x"},
			strict:    true,
			wantField: "end",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Valid: true, Cues: []Cue{tt.cue}}
			_, err := Compile(doc, CompileOptions{Strict: tt.strict})
			var compErr *CompilerError
			if !errors.As(err, &compErr) {
				t.Fatalf("Compile() error = %v, want CompilerError", err)
			}
			if compErr.Field != tt.wantField {
				t.Errorf("compErr.Field = [%v], want [%v]", compErr.Field, tt.wantField)
			}
		})
	}
}

func TestCompileStrictRejectsInvalidDocument(t *testing.T) {
	doc := &Document{Valid: false, Errors: []CueError{{Index: 0, Msg: "invalid cue timestamp"}}}
	if _, err := Compile(doc, DefaultCompileOptions()); err == nil {
		t.Fatal("strict Compile() of invalid document succeeded, want error")
	}
	if _, err := Compile(doc, CompileOptions{Strict: false}); err != nil {
		t.Fatalf("lenient Compile() error = %v, want nil", err)
	}
}

func TestCompileLenientAllowsZeroDuration(t *testing.T) {
	doc := &Document{Valid: true, Cues: []Cue{{Start: 1, End: 1, Text: "x"}}}
	if _, err := Compile(doc, CompileOptions{Strict: false}); err != nil {
		t.Fatalf("Compile() error = %v, want nil", err)
	}
}

func TestCompileOutput(t *testing.T) {
	doc := &Document{Valid: true, Cues: []Cue{
		{Identifier: "intro", Start: 1, End: 2.5, Text: "Hello\nWorld", Styles: "align:middle"},
	}}
	out, err := Compile(doc, DefaultCompileOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := "WEBVTT\n\nintro\n00:00:01.000 --> 00:00:02.500 align:middle\nHello\nWorld\n"
	if out != want {
		t.Errorf("out = [%v], want [%v]", out, want)
	}
}

func TestCompileParseRoundTrip(t *testing.T) {
	doc := &Document{Valid: true, Strict: true,
		Meta: map[string]any{"lang": "en"},
		Cues: []Cue{
			{Identifier: "0", Start: 1, End: 2.5, Text: "Hello", Styles: "align:middle",
				Meta: map[string]any{"speaker": "Tommy"}},
			{Identifier: "second", Start: 2.5, End: 4, Text: "World\nagain"},
		},
	}
	out, err := Compile(doc, DefaultCompileOptions())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	back, err := Parse(out, DefaultParseOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(back.Cues, doc.Cues) {
		t.Errorf("round trip cues = %+v, want %+v", back.Cues, doc.Cues)
	}
	if !reflect.DeepEqual(back.Meta, doc.Meta) {
		t.Errorf("round trip meta = %v, want %v", back.Meta, doc.Meta)
	}
}
