// Package form is the client side of the classifier: it validates JSON typed
// by a user, submits it and keeps the last response for filtered display.
package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"tokenform/api/internal/util"
)

// UserMessage is what frontends show for any input or transport failure.
const UserMessage = "Invalid JSON or failed to fetch data"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Request is the parsed JSON object, forwarded to the service unchanged.
type Request map[string]json.RawMessage

// ParseInput parses text typed by the user. The object must carry a truthy
// "data" member; an empty array counts as truthy.
func ParseInput(text string) (Request, error) {
	text = util.StripCodeFences(text)
	var req Request
	if err := json.Unmarshal([]byte(text), &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidInput)
	}
	data, ok := req["data"]
	if !ok || !truthy(data) {
		return nil, fmt.Errorf("%w: missing data field", ErrInvalidInput)
	}
	return req, nil
}

func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", `""`:
		return false
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return f != 0
	}
	return true
}
