package filedesc

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		payload *string
		want    Descriptor
	}{
		{"absent", nil, Descriptor{Status: Absent}},
		{"empty", strp(""), Descriptor{Status: Absent}},
		{"garbage", strp("not base64 at all!"), Descriptor{Status: Invalid}},
		{
			"one kilobyte",
			strp(base64.StdEncoding.EncodeToString(make([]byte, 1024))),
			Descriptor{Status: Valid, MimeType: PlaceholderMIME, SizeKB: 1},
		},
		{
			"png header gets placeholder mime",
			strp("iVBORw0KGgo="),
			Descriptor{Status: Valid, MimeType: PlaceholderMIME, SizeKB: 0.01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.payload))
		})
	}
}

func TestKBRounding(t *testing.T) {
	for n, want := range map[int]float64{
		0:       0,
		1:       0,
		5:       0,
		6:       0.01,
		1536:    1.5,
		2000:    1.95,
		1048576: 1024,
	} {
		assert.Equal(t, want, KB(n), "KB(%d)", n)
	}
}

func TestDescribeSizeMatchesDecodedLength(t *testing.T) {
	for _, n := range []int{1, 100, 1023, 4097, 65537} {
		raw := []byte(strings.Repeat("x", n))
		d := Describe(strp(base64.StdEncoding.EncodeToString(raw)))
		require.True(t, d.Valid())
		assert.Equal(t, KB(n), d.SizeKB)
	}
}

func TestWire(t *testing.T) {
	valid, mime, size := Descriptor{Status: Invalid}.Wire()
	assert.False(t, valid)
	assert.Nil(t, mime)
	assert.Nil(t, size)

	valid, mime, size = Descriptor{Status: Valid, MimeType: PlaceholderMIME, SizeKB: 0.1}.Wire()
	assert.True(t, valid)
	require.NotNil(t, mime)
	assert.Equal(t, PlaceholderMIME, *mime)

	b, err := json.Marshal(size)
	require.NoError(t, err)
	assert.Equal(t, "0.10", string(b))
}

func TestSizeUnmarshal(t *testing.T) {
	var s Size
	require.NoError(t, json.Unmarshal([]byte(`1.25`), &s))
	assert.Equal(t, Size(1.25), s)
	require.NoError(t, json.Unmarshal([]byte(`"0.01"`), &s))
	assert.Equal(t, Size(0.01), s)
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &s))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "valid", Valid.String())
}
