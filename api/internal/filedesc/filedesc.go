// Package filedesc derives size metadata from an optional base64 file payload.
package filedesc

import (
	"math"
	"strconv"

	"tokenform/api/internal/util"
)

// PlaceholderMIME is reported for every decodable payload. It is not derived
// from the content.
const PlaceholderMIME = "application/octet-stream"

type Status int

const (
	Absent Status = iota
	Invalid
	Valid
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Descriptor is the file metadata returned next to a classification.
// MimeType and SizeKB are meaningful only when Status == Valid.
type Descriptor struct {
	Status   Status
	MimeType string
	SizeKB   float64
}

// Describe treats a nil or empty payload as Absent.
func Describe(payload *string) Descriptor {
	if payload == nil || *payload == "" {
		return Descriptor{Status: Absent}
	}
	b, err := util.DecodeBase64MaybeDataURL(*payload)
	if err != nil {
		return Descriptor{Status: Invalid}
	}
	return Descriptor{
		Status:   Valid,
		MimeType: PlaceholderMIME,
		SizeKB:   KB(len(b)),
	}
}

// KB converts a byte count to kilobytes rounded to two decimals.
func KB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}

func (d Descriptor) Valid() bool { return d.Status == Valid }

// Wire renders the descriptor as the three response fields. Absent and
// Invalid look the same to callers.
func (d Descriptor) Wire() (valid bool, mime *string, size *Size) {
	if d.Status != Valid {
		return false, nil, nil
	}
	m := d.MimeType
	s := Size(d.SizeKB)
	return true, &m, &s
}

// Size marshals as a JSON number with exactly two decimals.
type Size float64

func (s Size) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(s), 'f', 2, 64)), nil
}

func (s *Size) UnmarshalJSON(b []byte) error {
	str := string(b)
	// older clients sent the size as a quoted string
	if uq, err := strconv.Unquote(str); err == nil {
		str = uq
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return err
	}
	*s = Size(f)
	return nil
}
