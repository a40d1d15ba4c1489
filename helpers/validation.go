package helpers

import (
	"github.com/Korux/SnP-REST-API/models"
)

// Attribute validation works on raw decoded JSON objects so that attribute
// counts are observable. Duplicate keys in a request body collapse to the
// last occurrence during JSON decoding; validation sees only the survivor.

type AttrKind int

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrBool
	AttrStringSet
)

type Schema map[string]AttrKind

var SongSchema = Schema{
	"name":   AttrString,
	"artist": AttrString,
	"length": AttrNumber,
	"bpm":    AttrNumber,
	"vocals": AttrStringSet,
	"genres": AttrStringSet,
}

var PlaylistSchema = Schema{
	"name":        AttrString,
	"description": AttrString,
	"public":      AttrBool,
}

// validAttr checks one value against its kind. Strings must be non-empty,
// numbers strictly positive, sets must be arrays of non-empty strings
// (an empty array is fine).
func validAttr(kind AttrKind, value any) (any, bool) {
	switch kind {
	case AttrString:
		s, ok := value.(string)
		if !ok || len(s) < 1 {
			return nil, false
		}
		return s, true
	case AttrNumber:
		n, ok := value.(float64)
		if !ok || n <= 0 {
			return nil, false
		}
		return n, true
	case AttrBool:
		b, ok := value.(bool)
		if !ok {
			return nil, false
		}
		return b, true
	case AttrStringSet:
		raw, ok := value.([]any)
		if !ok {
			return nil, false
		}
		set := make([]string, 0, len(raw))
		for _, e := range raw {
			s, ok := e.(string)
			if !ok || s == "" {
				return nil, false
			}
			set = append(set, s)
		}
		return set, true
	}
	return nil, false
}

// ValidateFull checks a create/replace body: exactly the schema's attribute
// count, and every schema attribute present and valid. Returns normalized
// values keyed by attribute name.
func ValidateFull(schema Schema, body map[string]any) (map[string]any, error) {
	if len(body) != len(schema) {
		return nil, models.ErrInvalidAttributeCount
	}

	values := make(map[string]any, len(schema))
	for key, kind := range schema {
		v, ok := validAttr(kind, body[key])
		if !ok {
			return nil, models.ErrInvalidAttributeValue
		}
		values[key] = v
	}
	return values, nil
}

// ValidatePartial checks a patch body: between 1 and the full attribute
// count, every supplied key recognized and individually valid. Any bad key
// or value rejects the whole request.
func ValidatePartial(schema Schema, body map[string]any) (map[string]any, error) {
	if len(body) < 1 || len(body) > len(schema) {
		return nil, models.ErrInvalidAttributeCount
	}

	values := make(map[string]any, len(body))
	for key, value := range body {
		kind, ok := schema[key]
		if !ok {
			return nil, models.ErrInvalidAttributeValue
		}
		v, ok := validAttr(kind, value)
		if !ok {
			return nil, models.ErrInvalidAttributeValue
		}
		values[key] = v
	}
	return values, nil
}
