package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"std", "aGVsbG8=", "hello"},
		{"unpadded", "aGVsbG8", "hello"},
		{"url safe", "-_8=", "\xfb\xff"},
		{"data url", "data:text/plain;base64,aGVsbG8=", "hello"},
		{"spaces", "  aGk=\n", "hi"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64MaybeDataURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeBase64MaybeDataURLInvalid(t *testing.T) {
	for _, in := range []string{"not base64!", "a", "%%%%", "data:image/png;base64,@@"} {
		_, err := DecodeBase64MaybeDataURL(in)
		assert.Error(t, err, "input %q", in)
	}
}
