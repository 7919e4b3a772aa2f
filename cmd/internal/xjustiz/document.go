package xjustiz

import (
	"github.com/clbanning/mxj/v2"
)

// RootMessage is the XJustiz register message (Registerbekanntmachung) this
// package knows how to read. Documents without it are rejected before
// extraction.
const RootMessage = "tns:nachricht.reg.0400003"

// Document is a parsed XJustiz filing: a nested map/slice tree with
// namespace-prefixed string keys, one level per XML element, scalar text as
// string. The shape mirrors what mxj produces and what the extraction code
// walks.
type Document map[string]any

// Parse converts raw XML (or XHTML carrying the same element tree) into a
// Document. It does not check for the expected root message; callers do that
// with HasRoot so they can tell "unparseable" from "wrong message type".
func Parse(data []byte) (Document, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	return Document(m), nil
}

// HasRoot reports whether the document carries the expected register message
// element.
func (d Document) HasRoot() bool {
	_, ok := d[RootMessage]
	return ok
}

// lookup walks keys into node, returning nil at the first step where the
// current value is not a map or the key is absent. It is the single
// optional-safe accessor the extractors build on; no extraction path may
// index a map directly.
func lookup(node any, keys ...string) any {
	cur := node
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

// lookupString resolves a deep path to an optional scalar. Non-string leaves
// (e.g. an element that unexpectedly has children) count as absent.
func lookupString(node any, keys ...string) *string {
	v := lookup(node, keys...)
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// first normalizes blocks the schema allows as either a single object or a
// list of objects (addresses, roles): a list yields its first element, a
// plain value yields itself, nil stays nil.
func first(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// asList normalizes repeating blocks (participants, entry texts): nil stays
// nil, a list is returned as-is, anything else becomes a one-element list. A
// filing with a single participant parses as a plain object, not a list, and
// must still be iterated.
func asList(v any) []any {
	if v == nil {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}
