package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ListShape tags how the server shaped a list response.
type ListShape int

const (
	// ShapeArray is a bare JSON array (or an object of objects folded into one).
	ShapeArray ListShape = iota
	// ShapePaginated is {"count": n, "results": [...]}.
	ShapePaginated
)

func (s ListShape) String() string {
	if s == ShapePaginated {
		return "paginated"
	}
	return "array"
}

// Listing is a list response normalized at the API boundary.
type Listing[T any] struct {
	Shape ListShape
	Items []T
	// Count is the server-side total for paginated responses and len(Items)
	// otherwise.
	Count int
}

// DecodeListing normalizes the three list shapes the API produces:
// a bare array, a paginated envelope, and an object whose values are
// records (only values carrying an "id" are kept). The object form may
// appear at the top level or under "results".
func DecodeListing[T any](data []byte) (Listing[T], error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Listing[T]{Shape: ShapeArray, Items: []T{}}, nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return Listing[T]{}, fmt.Errorf("decode list: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return Listing[T]{Shape: ShapeArray, Items: items, Count: len(items)}, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Listing[T]{}, fmt.Errorf("decode list: %w", err)
	}

	results, ok := envelope["results"]
	if !ok {
		items, err := decodeRecordValues[T](envelope)
		if err != nil {
			return Listing[T]{}, err
		}
		return Listing[T]{Shape: ShapeArray, Items: items, Count: len(items)}, nil
	}

	results = bytes.TrimSpace(results)
	if len(results) > 0 && results[0] == '[' {
		var items []T
		if err := json.Unmarshal(results, &items); err != nil {
			return Listing[T]{}, fmt.Errorf("decode results: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		count := len(items)
		if raw, ok := envelope["count"]; ok {
			var n int
			if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
				count = n
			}
		}
		return Listing[T]{Shape: ShapePaginated, Items: items, Count: count}, nil
	}

	if len(results) > 0 && results[0] == '{' {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(results, &inner); err != nil {
			return Listing[T]{}, fmt.Errorf("decode results: %w", err)
		}
		items, err := decodeRecordValues[T](inner)
		if err != nil {
			return Listing[T]{}, err
		}
		return Listing[T]{Shape: ShapeArray, Items: items, Count: len(items)}, nil
	}

	return Listing[T]{Shape: ShapeArray, Items: []T{}}, nil
}

// RecordValues returns the object elements of a JSON array, or the object
// values of a JSON object in orderedKeys order. Non-object entries (such as
// a statusCode the server mixes in) are dropped.
func RecordValues(data []byte) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var elems []json.RawMessage
	if data[0] == '[' {
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("decode values: %w", err)
		}
	} else {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("decode values: %w", err)
		}
		for _, k := range orderedKeys(obj) {
			elems = append(elems, obj[k])
		}
	}

	out := elems[:0]
	for _, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) > 0 && e[0] == '{' {
			out = append(out, e)
		}
	}
	return out, nil
}

// orderedKeys orders keys the way a JavaScript Object.values call would:
// integer keys ascending, then the remaining keys.
func orderedKeys(obj map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// decodeRecordValues keeps object values that carry an "id", in
// orderedKeys order.
func decodeRecordValues[T any](obj map[string]json.RawMessage) ([]T, error) {
	keys := orderedKeys(obj)

	items := make([]T, 0, len(keys))
	for _, k := range keys {
		raw := bytes.TrimSpace(obj[k])
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		if _, ok := fields["id"]; !ok {
			continue
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode record %q: %w", k, err)
		}
		items = append(items, item)
	}
	return items, nil
}
