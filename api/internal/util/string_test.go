package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"data":[]}`, StripCodeFences("```json\n{\"data\":[]}\n```"))
	assert.Equal(t, `{"data":[]}`, StripCodeFences("```\n{\"data\":[]}```"))
	assert.Equal(t, `{"data":[]}`, StripCodeFences("  {\"data\":[]}  "))
}
