package handle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"tokenform/api/internal/classify"
	"tokenform/api/internal/filedesc"
	"tokenform/api/internal/types"
)

const allowedMethods = "GET, POST"

var (
	errMissingData = errors.New("data must be an array")
	errTrailing    = errors.New("unexpected content after the JSON object")
)

func (h *Handle) BFHL(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.post(w, r)
	case http.MethodGet:
		writeJSON(w, http.StatusOK, types.Status{
			OperationCode: types.OperationCode,
			IsSuccess:     true,
			UserID:        h.id.UserID,
		})
	default:
		w.Header().Set("Allow", allowedMethods)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = fmt.Fprintf(w, "Method %s Not Allowed", r.Method)
	}
}

func (h *Handle) post(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tokens, err := decodeTokens(req.Data)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := classify.Classify(tokens)
	fd := describeFile(req.FileB64)
	valid, mime, size := fd.Wire()

	h.log.Debug("classified",
		zap.Int("tokens", len(tokens)),
		zap.Int("numbers", len(res.Numbers)),
		zap.Int("alphabets", len(res.Alphabets)),
		zap.Stringer("file", fd.Status),
	)

	writeJSON(w, http.StatusOK, types.Response{
		IsSuccess:        true,
		UserID:           h.id.UserID,
		Email:            h.id.Email,
		RollNumber:       h.id.RollNumber,
		Numbers:          res.Numbers,
		Alphabets:        res.Alphabets,
		HighestLowercase: res.HighestLowercase,
		FileValid:        valid,
		FileMimeType:     mime,
		FileSizeKB:       size,
	})
}

func (h *Handle) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Info("rejected classify request", zap.String("path", r.URL.Path), zap.Error(err))
	writeJSON(w, http.StatusBadRequest, types.Failure{IsSuccess: false, UserID: h.id.UserID})
}

// decodeRequest reads exactly one JSON object. Keys are matched
// case-sensitively, so {"Data": [...]} has no data.
func decodeRequest(body io.Reader) (types.Request, error) {
	dec := json.NewDecoder(body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return types.Request{}, fmt.Errorf("bad json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return types.Request{}, errTrailing
	}
	return types.Request{Data: fields["data"], FileB64: fields["file_b64"]}, nil
}

// decodeTokens accepts only a JSON array. String elements are taken as-is,
// anything else by its JSON text, so 5 becomes "5".
func decodeTokens(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errMissingData
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", errMissingData, err)
	}
	tokens := make([]string, 0, len(elems))
	for _, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) > 0 && e[0] == '"' {
			var s string
			if err := json.Unmarshal(e, &s); err != nil {
				return nil, fmt.Errorf("%w: %v", errMissingData, err)
			}
			tokens = append(tokens, s)
			continue
		}
		tokens = append(tokens, string(e))
	}
	return tokens, nil
}

// describeFile treats a missing or null file_b64 as absent and a non-string
// value as an undecodable payload.
func describeFile(raw json.RawMessage) filedesc.Descriptor {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return filedesc.Describe(nil)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return filedesc.Descriptor{Status: filedesc.Invalid}
	}
	return filedesc.Describe(&s)
}
