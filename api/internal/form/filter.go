package form

import (
	"encoding/json"

	"tokenform/api/internal/types"
)

// Selection is a set of fields.
type Selection uint8

func SelectionOf(fields ...Field) Selection {
	var s Selection
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

func (s Selection) Has(f Field) bool {
	return s&(1<<f) != 0
}

func (s Selection) With(f Field) Selection {
	return s | 1<<f
}

func (s Selection) Toggle(f Field) Selection {
	return s ^ 1<<f
}

// Fields returns the selected fields in display order.
func (s Selection) Fields() []Field {
	out := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Filter keeps only the selected fields of resp. A nil response yields nil.
func Filter(resp *types.Response, sel Selection) map[string][]string {
	if resp == nil {
		return nil
	}
	out := make(map[string][]string, len(Fields))
	for _, f := range sel.Fields() {
		switch f {
		case Alphabets:
			out[f.Key()] = resp.Alphabets
		case Numbers:
			out[f.Key()] = resp.Numbers
		case HighestLowercase:
			out[f.Key()] = resp.HighestLowercase
		}
	}
	return out
}

// rendered fixes the key order of Render: alphabets, numbers, highest.
// Unselected fields stay nil and are omitted; selected empty lists print as [].
type rendered struct {
	Alphabets        *[]string `json:"alphabets,omitempty"`
	Numbers          *[]string `json:"numbers,omitempty"`
	HighestLowercase *[]string `json:"highest_lowercase_alphabet,omitempty"`
}

// Render prints the filtered response as two-space indented JSON, keys in display order.
func Render(resp *types.Response, sel Selection) string {
	var out rendered
	for key, v := range Filter(resp, sel) {
		switch key {
		case Alphabets.Key():
			out.Alphabets = nonNil(v)
		case Numbers.Key():
			out.Numbers = nonNil(v)
		case HighestLowercase.Key():
			out.HighestLowercase = nonNil(v)
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func nonNil(v []string) *[]string {
	if v == nil {
		v = []string{}
	}
	return &v
}
