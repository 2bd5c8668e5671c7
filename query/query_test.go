package query

import (
	"errors"
	"strings"
	"testing"
)

const doc = `[{"type":"multiple_declaration","var_type":"int","declarations":[{"name":"a","value":null},{"name":"b","value":3}],"line":1},` +
	`{"type":"output","value":"hi","value_kind":"string","line":2}]`

func TestGet(t *testing.T) {
	PurgeCache()
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"0.type", "multiple_declaration", true},
		{"0.declarations.1.value", "3", true},
		{"1.value", "hi", true},
		{"#.type", `["multiple_declaration","output"]`, true},
		{"#", "2", true},
		{"5.type", "", false},
	}
	for _, tt := range tests {
		res, ok := Get(doc, tt.path)
		if ok != tt.ok {
			t.Errorf("Get(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && res.String() != tt.want {
			t.Errorf("Get(%q) = %s, want %s", tt.path, res.String(), tt.want)
		}
	}
	if n := CacheLen(); n != 1 {
		t.Errorf("cache holds %d docs, want 1", n)
	}
}

func TestGetInvalid(t *testing.T) {
	PurgeCache()
	if _, ok := Get("{not json", "a"); ok {
		t.Error("invalid doc matched")
	}
	if CacheLen() != 0 {
		t.Error("invalid doc was cached")
	}
	if _, err := Lookup("{not json", "a"); !errors.Is(err, ErrInvalidDoc) {
		t.Errorf("got %v, want ErrInvalidDoc", err)
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup(doc, " 1.value_kind ")
	if err != nil || s != "string" {
		t.Errorf("got %q, %v", s, err)
	}

	s, err = Lookup(doc, "0.declarations.0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "\n") || !strings.Contains(s, `"name": "a"`) {
		t.Errorf("object not pretty printed: %s", s)
	}

	if _, err := Lookup(doc, "nope"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("got %v, want ErrNoMatch", err)
	}
}

func TestCacheEviction(t *testing.T) {
	PurgeCache()
	SetCacheSize(2)
	defer SetCacheSize(DefaultCacheSize)

	for _, d := range []string{`[1]`, `[2]`, `[3]`} {
		Get(d, "0")
	}
	if n := CacheLen(); n != 2 {
		t.Errorf("cache holds %d docs, want 2", n)
	}
	SetCacheSize(0)
	if n := CacheLen(); n != 2 {
		t.Errorf("size 0 should be ignored, cache holds %d", n)
	}
}
