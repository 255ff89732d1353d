package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

func TestDecode(t *testing.T) {
	d := NewJSONDecoder()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"T","extra":1}`))
	var p payload
	require.NoError(t, d.Decode(r, &p))
	assert.Equal(t, "T", p.Title)
	assert.Nil(t, p.Content)
}

func TestDecodeEmptyBody(t *testing.T) {
	d := NewJSONDecoder()

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	var p payload
	assert.ErrorIs(t, d.Decode(r, &p), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, d.Decode(r, &p), ErrEmptyBody)
}

func TestDecodeMalformed(t *testing.T) {
	d := NewJSONDecoder()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	var p payload
	err := d.Decode(r, &p)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":5}`))
	assert.Error(t, d.Decode(r, &p))
}
