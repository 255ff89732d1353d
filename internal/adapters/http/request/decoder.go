// Package request
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const defaultMaxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body is empty")

type RequestDecoder interface {
	Decode(r *http.Request, dst any) error
}

type jsonDecoder struct {
	maxBytes int64
}

func NewJSONDecoder() RequestDecoder {
	return &jsonDecoder{maxBytes: defaultMaxBodyBytes}
}

func (d *jsonDecoder) Decode(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, d.maxBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid json body: %w", err)
	}

	return nil
}
