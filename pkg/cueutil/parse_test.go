// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: close({
	name:   string & !=""
	count?: int & >=0
	tags?: [...string]
})
`

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`
name:  "wallet"
count: 2
tags: ["a", "b"]
`)
	res, err := ParseAndDecodeString[testDoc](testSchema, data, "#Doc", WithFilename("doc.cue"))
	if err != nil {
		t.Fatalf("ParseAndDecodeString() error = %v", err)
	}
	if res.Value.Name != "wallet" || res.Value.Count != 2 || len(res.Value.Tags) != 2 {
		t.Errorf("decoded %+v", *res.Value)
	}
	if !res.Unified.Exists() {
		t.Error("Unified value should exist")
	}
}

func TestParseAndDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		opts    []Option
		wantSub string
	}{
		{name: "syntax error", data: `name: "x`, wantSub: "doc.cue"},
		{name: "constraint violation", data: "name: \"x\"\ncount: -1", wantSub: "count"},
		{name: "closed struct", data: "name: \"x\"\nextra: 1", wantSub: "extra"},
		{name: "missing required field", data: `count: 1`, wantSub: "name"},
		{name: "size limit", data: `name: "wallet"`, opts: []Option{WithMaxFileSize(4)}, wantSub: "exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithFilename("doc.cue")}, tt.opts...)
			_, err := ParseAndDecodeString[testDoc](testSchema, []byte(tt.data), "#Doc", opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseAndDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecodeString[testDoc](testSchema, []byte(`name: "x"`), "#Nope")
	if err == nil || !strings.Contains(err.Error(), "#Nope") {
		t.Errorf("expected missing definition error, got %v", err)
	}
}

func TestWithFilename_EmptyKeepsDefault(t *testing.T) {
	t.Parallel()

	o := defaultOptions()
	WithFilename("")(&o)
	if o.filename != "<input>" {
		t.Errorf("filename = %q, want <input>", o.filename)
	}
}

func TestWithConcrete(t *testing.T) {
	t.Parallel()

	o := defaultOptions()
	if !o.concrete {
		t.Fatal("concrete should default to true")
	}
	WithConcrete(false)(&o)
	if o.concrete {
		t.Error("WithConcrete(false) did not clear concrete")
	}
}

func TestDecodeValue(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":  "wallet",
		"count": int64(2),
		"tags":  []any{"a", "b"},
	}
	res, err := DecodeValue[testDoc](testSchema, doc, "#Doc", WithFilename("doc.toml"))
	if err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	if res.Value.Name != "wallet" || res.Value.Count != 2 || len(res.Value.Tags) != 2 {
		t.Errorf("decoded %+v", *res.Value)
	}
}

func TestDecodeValue_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     map[string]any
		wantSub string
	}{
		{name: "constraint violation", doc: map[string]any{"name": "x", "count": int64(-1)}, wantSub: "count"},
		{name: "closed struct", doc: map[string]any{"name": "x", "extra": int64(1)}, wantSub: "extra"},
		{name: "missing required field", doc: map[string]any{"count": int64(1)}, wantSub: "name"},
		{name: "wrong type", doc: map[string]any{"name": int64(3)}, wantSub: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeValue[testDoc](testSchema, tt.doc, "#Doc", WithFilename("doc.toml"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "doc.toml") || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should name doc.toml and %q", err, tt.wantSub)
			}
		})
	}
}
