// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonlint

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jsonlint/ast"
)

// ParseOptions control the behaviour of Parse.
type ParseOptions struct {
	Dialect

	// If set, Reviver is called for each value of the parsed tree, bottom-up.
	Reviver Reviver
}

// A Reviver transforms a parsed value. It is called once for each member of
// each object and each element of each array, after its own children have
// been visited, and finally for the root value with an empty key. Array
// elements receive their decimal index as key. The value passed to a reviver
// already reflects the transformation of its children.
type Reviver func(key string, value ast.Value) Action

// An Action is the result of a Reviver.
type Action struct {
	op    byte // 0 = keep, 'r' = replace, 'o' = omit
	value ast.Value
}

// Keep returns an Action that keeps the value unchanged.
func Keep() Action { return Action{} }

// Replace returns an Action that substitutes v for the value.
func Replace(v ast.Value) Action { return Action{op: 'r', value: v} }

// Omit returns an Action that deletes the value from its enclosing object or
// array. Omitting the root value makes the result of Parse nil.
func Omit() Action { return Action{op: 'o'} }

// Parse parses src as a single JSON value under the given options.
//
// If the dialect permits duplicate keys, the last value for a key wins, and
// the key keeps the position of its first occurrence. In case of a syntax
// error, the returned error has type [*SyntaxError].
func Parse(src []byte, opts ParseOptions) (ast.Value, error) {
	h := new(parseHandler)
	if err := NewStream(src, opts.Dialect).Parse(h); err != nil {
		return nil, err
	}
	if opts.Reviver == nil {
		return h.root, nil
	}
	v, keep := revive("", h.root, opts.Reviver)
	if !keep {
		return nil, nil
	}
	return v, nil
}

func revive(key string, v ast.Value, r Reviver) (ast.Value, bool) {
	switch t := v.(type) {
	case ast.Object:
		out := t[:0]
		for _, m := range t {
			if nv, ok := revive(m.Key, m.Value, r); ok {
				m.Value = nv
				out = append(out, m)
			}
		}
		v = out
	case ast.Array:
		out := t[:0]
		for i, e := range t {
			if nv, ok := revive(strconv.Itoa(i), e, r); ok {
				out = append(out, nv)
			}
		}
		v = out
	}
	switch act := r(key, v); act.op {
	case 'r':
		return act.value, true
	case 'o':
		return nil, false
	default:
		return v, true
	}
}

// A parseHandler implements the Handler interface to construct value trees.
type parseHandler struct {
	stk  []*frame
	root ast.Value
}

// A frame is an object or array under construction.
type frame struct {
	obj   ast.Object
	arr   ast.Array
	isObj bool
	keys  map[string]int // object key → member index
	cur   int            // index of the current object member
}

func (f *frame) value() ast.Value {
	if f.isObj {
		if f.obj == nil {
			return ast.Object{}
		}
		return f.obj
	}
	if f.arr == nil {
		return ast.Array{}
	}
	return f.arr
}

func (h *parseHandler) push(f *frame) { h.stk = append(h.stk, f) }

func (h *parseHandler) pop() *frame {
	last := h.stk[len(h.stk)-1]
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) reduce(v ast.Value) error {
	if len(h.stk) == 0 {
		h.root = v
		return nil
	}
	top := h.stk[len(h.stk)-1]
	if top.isObj {
		top.obj[top.cur].Value = v
	} else {
		top.arr = append(top.arr, v)
	}
	return nil
}

func (h *parseHandler) BeginObject(loc Anchor) error {
	h.push(&frame{isObj: true, keys: make(map[string]int)})
	return nil
}

func (h *parseHandler) EndObject(loc Anchor) error { return h.reduce(h.pop().value()) }

func (h *parseHandler) BeginArray(loc Anchor) error {
	h.push(new(frame))
	return nil
}

func (h *parseHandler) EndArray(loc Anchor) error { return h.reduce(h.pop().value()) }

func (h *parseHandler) BeginMember(loc Anchor, key string) error {
	// A repeated key updates the existing member in place.
	top := h.stk[len(h.stk)-1]
	if i, ok := top.keys[key]; ok {
		top.cur = i
		return nil
	}
	top.cur = len(top.obj)
	top.keys[key] = top.cur
	top.obj = append(top.obj, &ast.Member{Key: key})
	return nil
}

func (h *parseHandler) EndMember(loc Anchor) error { return nil }

func (h *parseHandler) Value(loc Anchor) error {
	v, err := scalarValue(loc.Kind(), loc)
	if err != nil {
		return err
	}
	return h.reduce(v)
}

func (h *parseHandler) EndOfInput(loc Anchor) {}

// scalarValue decodes the scalar value of the given kind at loc.
func scalarValue(kind Kind, loc Anchor) (ast.Value, error) {
	switch kind {
	case String:
		dec, err := unquote(loc.Text())
		if err != nil {
			return nil, newSyntaxError(nil, loc.Location(), err, fmt.Sprintf("invalid string: %v", err))
		}
		return ast.String(dec), nil
	case Integer, Number:
		return ast.Number(loc.Text().StringCopy()), nil
	case True, False:
		return ast.Bool(kind == True), nil
	case Null:
		return ast.Null{}, nil
	default:
		return nil, fmt.Errorf("unknown value %v", kind)
	}
}
