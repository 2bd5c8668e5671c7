package query

import (
	"errors"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/gjson"
)

const DefaultCacheSize = 32

var (
	ErrInvalidDoc = errors.New("document is not valid json")
	ErrNoMatch    = errors.New("path matched nothing")

	// parsed documents, keyed by their text
	docCacher = newCacher(DefaultCacheSize)
)

func newCacher(size int) *lru.Cache[string, gjson.Result] {
	c, err := lru.New[string, gjson.Result](size)
	if err != nil {
		// only returned for size <= 0
		panic(err)
	}
	return c
}

// SetCacheSize resizes the document cache. Sizes below 1 are ignored.
func SetCacheSize(size int) {
	if size > 0 {
		docCacher.Resize(size)
	}
}

func CacheLen() int {
	return docCacher.Len()
}

func PurgeCache() {
	docCacher.Purge()
}

func parsed(doc string) (gjson.Result, error) {
	if r, ok := docCacher.Get(doc); ok {
		return r, nil
	}
	if !gjson.Valid(doc) {
		return gjson.Result{}, ErrInvalidDoc
	}
	r := gjson.Parse(doc)
	docCacher.Add(doc, r)
	return r, nil
}

// Get runs a gjson path against doc. ok is false when doc is not JSON or
// the path matched nothing.
func Get(doc, path string) (gjson.Result, bool) {
	r, err := parsed(doc)
	if err != nil {
		return gjson.Result{}, false
	}
	res := r.Get(path)
	return res, res.Exists()
}

// Lookup is Get with the failure spelled out, for the CLI and REPL.
func Lookup(doc, path string) (string, error) {
	path = strings.TrimSpace(path)
	r, err := parsed(doc)
	if err != nil {
		return "", err
	}
	res := r.Get(path)
	if !res.Exists() {
		return "", ErrNoMatch
	}
	return Format(res), nil
}

// Format renders objects and arrays indented, strings unquoted and anything
// else as its raw JSON.
func Format(r gjson.Result) string {
	switch {
	case r.IsObject(), r.IsArray():
		return strings.TrimRight(gjson.Get(r.Raw, "@pretty").Raw, "\n")
	case r.Type == gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}
