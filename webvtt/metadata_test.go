package webvtt

import (
	"reflect"
	"strings"
	"testing"
)

func Test_decodeMetaBlock(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		wantScope metaScope
		wantMeta  map[string]any
		wantErr   bool
	}{
		{
			name:      "not a note",
			block:     "00:00:01.000 --> 00:00:02.000\nHi",
			wantScope: scopeNone,
		},
		{
			name:      "plain note without sentinel",
			block:     "NOTE remember to proofread this",
			wantScope: scopeNone,
		},
		{
			name:      "document scope",
			block:     `NOTE @meta {"lang":"en"}`,
			wantScope: scopeDocument,
			wantMeta:  map[string]any{"lang": "en"},
		},
		{
			name:      "cue scope",
			block:     `NOTE @cue-meta {"speaker":"Tommy"}`,
			wantScope: scopeCue,
			wantMeta:  map[string]any{"speaker": "Tommy"},
		},
		{
			name:      "leading whitespace tolerated",
			block:     `  NOTE @meta {"lang":"en"}`,
			wantScope: scopeDocument,
			wantMeta:  map[string]any{"lang": "en"},
		},
		{
			name:      "bad payload",
			block:     "NOTE @meta {nope",
			wantScope: scopeDocument,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, meta, err := decodeMetaBlock(tt.block)
			if scope != tt.wantScope {
				t.Errorf("scope = %v, want %v", scope, tt.wantScope)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantMeta != nil && !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("meta = %v, want %v", meta, tt.wantMeta)
			}
		})
	}
}

func Test_encodeMetaBlock(t *testing.T) {
	block, err := encodeMetaBlock(docMetaSentinel, map[string]any{"lang": "en"})
	if err != nil {
		t.Fatalf("encodeMetaBlock() error = %v", err)
	}
	if block != `NOTE @meta {"lang":"en"}` {
		t.Errorf("block = [%v]", block)
	}
}

func Test_encodeMetaBlockStripsArrow(t *testing.T) {
	block, err := encodeMetaBlock(docMetaSentinel, map[string]any{"note": "a --> b"})
	if err != nil {
		t.Fatalf("encodeMetaBlock() error = %v", err)
	}
	if strings.Contains(block, arrow) {
		t.Errorf("block = [%v], arrow token must be stripped", block)
	}
}

func Test_mergeMeta(t *testing.T) {
	got := mergeMeta(map[string]any{"a": 1, "c": 9}, map[string]any{"a": 2, "b": 3})
	want := map[string]any{"a": 2, "b": 3, "c": 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeMeta() = %v, want %v", got, want)
	}

	if got := mergeMeta(nil, map[string]any{"a": 1}); got["a"] != 1 {
		t.Errorf("mergeMeta(nil, ...) = %v, want a=1", got)
	}
}
