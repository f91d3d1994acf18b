// Package services holds the HTTP clients for the remote product, order and
// user services. Response bodies are decoded exactly once here, into a
// JSON-or-text union; nothing downstream re-inspects raw bodies.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// RemoteError covers unreachable endpoints and non-2xx responses.
type RemoteError struct {
	Status int
	Body   string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote call failed: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ResponseBody is the decoded-once response union: exactly one of JSON or
// Text is meaningful, selected by the response content type.
type ResponseBody struct {
	JSON json.RawMessage
	Text string
}

func (b ResponseBody) IsJSON() bool { return b.JSON != nil }

func doRequest(ctx context.Context, client *http.Client, method, url, bearer string, payload interface{}) (ResponseBody, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return ResponseBody{}, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return ResponseBody{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return ResponseBody{}, &RemoteError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ResponseBody{}, &RemoteError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ResponseBody{}, &RemoteError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return ResponseBody{JSON: data}, nil
	}
	return ResponseBody{Text: strings.TrimSpace(string(data))}, nil
}

// flexInt64 tolerates numbers that arrive as JSON strings ("1250"), floats
// or null, coercing them all to int64 minor units.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Unexpected shape degrades to zero rather than failing the decode.
		*f = 0
		return nil
	}
	*f = flexInt64(v + 0.5)
	return nil
}

// flexString tolerates values that arrive as JSON numbers where the contract
// says string (phone numbers, ids).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	*f = flexString(strings.Trim(s, `"`))
	return nil
}
