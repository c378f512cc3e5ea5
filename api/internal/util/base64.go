package util

import (
	"encoding/base64"
	"strings"
)

var b64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

// DecodeBase64MaybeDataURL декодирует base64. Если это data:URI, префикс отбрасывается
// вместе с MIME из него: тип файла мы не доверяем клиенту.
func DecodeBase64MaybeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		if idx := strings.IndexByte(s, ','); idx > 0 {
			s = s[idx+1:]
		}
	}
	// Стандартная база64, затем URL-safe и варианты без паддинга
	var firstErr error
	for _, enc := range b64Encodings {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
