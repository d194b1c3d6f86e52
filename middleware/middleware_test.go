// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/celebrate/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Logging must not interfere with any response code
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":123}`},
		{"NoContent", http.StatusNoContent, ""},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/test", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "expected a UUID request id, got %q", id)
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, "upstream-42", w.Header().Get(RequestIDHeader))
	})
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "vote count",
			statusCode: http.StatusOK,
			data:       models.VoteCount{OptionID: 3, OptionText: "Beach Town", VoteCount: 2},
			expected:   `{"option_id":3,"option_text":"Beach Town","vote_count":2}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			// Trim newline added by Encode
			assert.Equal(t, tc.expected, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "name is required", "Bad Request"},
		{"forbidden", http.StatusForbidden, "voting is closed", "Forbidden"},
		{"not found", http.StatusNotFound, "user 9 not found", "Not Found"},
		{"internal error", http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp models.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tc.expectedError, resp.Error)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"activity_id":1,"option_id":2}`))

		var parsed models.SubmitVoteRequest
		require.NoError(t, ParseJSONBody(req, &parsed))
		assert.Equal(t, int64(1), parsed.ActivityID)
		assert.Equal(t, int64(2), parsed.OptionID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.SubmitVoteRequest
		assert.Error(t, ParseJSONBody(req, &parsed))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.RegisterUserRequest
		assert.Error(t, ParseJSONBody(req, &parsed))
	})

	t.Run("wrong type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"activity_id":"one"}`))

		var parsed models.SubmitVoteRequest
		assert.Error(t, ParseJSONBody(req, &parsed))
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Bob","unknown_field":"ignored"}`))

		var parsed models.RegisterUserRequest
		require.NoError(t, ParseJSONBody(req, &parsed))
		assert.Equal(t, "Bob", parsed.Name)
	})

	t.Run("body is consumed after parsing", func(t *testing.T) {
		bodyReader := io.NopCloser(bytes.NewReader([]byte(`{"name":"Alice"}`)))
		req := httptest.NewRequest("POST", "/", bodyReader)

		var parsed models.RegisterUserRequest
		_ = ParseJSONBody(req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		assert.Empty(t, remaining)
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS([]string{"https://zfenton.github.io", "http://localhost:5173"})(nextHandler)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/voting/vote/1", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		// Preflight doesn't call next
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		for _, method := range []string{"GET", "POST", "OPTIONS"} {
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), method)
		}
	})

	t.Run("regular request from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/voting/activities", nil)
		req.Header.Set("Origin", "https://zfenton.github.io")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "handled", w.Body.String())
		assert.Equal(t, "https://zfenton.github.io", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/voting/activities", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		assert.Equal(t, "handled", w.Body.String())
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request without origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/voting/activities", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		assert.Equal(t, "handled", w.Body.String())
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"})(nextHandler)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			remoteAddr: "[::1]:12345",
			expectedIP: "::1",
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tc.expectedIP, GetClientIP(req))
		})
	}
}
