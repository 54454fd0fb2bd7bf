//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx responses, decodes the
// body into target when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil && wantStatus >= 200 && wantStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error envelope message
// contains wantMsg (skipped when empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "decode error envelope: %s", w.Body.String())

	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
