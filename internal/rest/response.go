package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Response is the payload of a successful call.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the server labelled the body as JSON.
func (r *Response) IsJSON() bool {
	return strings.HasPrefix(r.ContentType, "application/json")
}

// Decode unmarshals the JSON body into v. The Realms API does not always
// label JSON bodies, so the content type is not checked.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Text returns the body as a string. A JSON string body is unquoted.
func (r *Response) Text() string {
	body := bytes.TrimSpace(r.Body)
	if len(body) > 1 && body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			return s
		}
	}
	return string(body)
}

// Bool parses a "true"/"false" body, the answer of most state-changing
// endpoints.
func (r *Response) Bool() (bool, error) {
	b, err := strconv.ParseBool(r.Text())
	if err != nil {
		return false, fmt.Errorf("decode boolean response %q: %w", r.Text(), err)
	}
	return b, nil
}
