package form

import (
	"fmt"
	"strings"
)

// Field is one of the filterable response fields.
type Field int

const (
	Alphabets Field = iota
	Numbers
	HighestLowercase
)

// Fields lists every field in display order.
var Fields = []Field{Alphabets, Numbers, HighestLowercase}

func (f Field) Label() string {
	switch f {
	case Alphabets:
		return "Alphabets"
	case Numbers:
		return "Numbers"
	case HighestLowercase:
		return "Highest Lowercase Alphabet"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Key is the JSON key the field maps to in the classifier response.
func (f Field) Key() string {
	switch f {
	case Alphabets:
		return "alphabets"
	case Numbers:
		return "numbers"
	case HighestLowercase:
		return "highest_lowercase_alphabet"
	}
	return ""
}

func (f Field) String() string { return f.Label() }

// ParseField accepts a label, a JSON key, or a short alias, case-insensitively.
func ParseField(s string) (Field, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields {
		if norm == strings.ToLower(f.Label()) || norm == f.Key() {
			return f, nil
		}
	}
	switch norm {
	case "alpha", "letters":
		return Alphabets, nil
	case "nums", "number":
		return Numbers, nil
	case "highest", "highest_lowercase", "max":
		return HighestLowercase, nil
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// ParseFields parses a list of field names, dropping duplicates.
func ParseFields(names []string) ([]Field, error) {
	var sel Selection
	for _, n := range names {
		f, err := ParseField(n)
		if err != nil {
			return nil, err
		}
		sel = sel.With(f)
	}
	return sel.Fields(), nil
}
