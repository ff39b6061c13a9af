package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIChatClientComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"namaste"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChatClient("gsk_test", srv.URL, "llama3-70b-8192")
	out, err := c.Complete(context.Background(), ChatRequest{System: "sys", User: "hello", Temperature: 0.8, MaxTokens: 4000})
	require.NoError(t, err)
	assert.Equal(t, "namaste", out)

	assert.Equal(t, "llama3-70b-8192", body["model"])
	assert.InDelta(t, 0.8, body["temperature"], 1e-6)
	assert.EqualValues(t, 4000, body["max_tokens"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "hello", msgs[1].(map[string]any)["content"])
}

func TestOpenAIChatClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"over capacity","type":"server_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIChatClient("gsk_test", srv.URL, "llama3-70b-8192")
	_, err := c.Complete(context.Background(), ChatRequest{User: "hi"})
	assert.ErrorIs(t, err, ErrLLMUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retries")
}

func TestOpenAIChatClientEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  "}}]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIChatClient("k", srv.URL, "m").Complete(context.Background(), ChatRequest{User: "hi"})
	assert.ErrorIs(t, err, ErrLLMEmptyContent)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Here is the itinerary:\n{\"a\":{\"b\":\"}\"}}\nEnjoy!", `{"a":{"b":"}"}}`},
		{"no object", "sorry", "sorry"},
		{"unterminated", `{"a":[1,2`, `{"a":[1,2`},
		{"fence inside string", "```json\n{\"title\":\"use ``` here\"}\n```", "{\"title\":\"use ``` here\"}"},
		{"unfenced fence inside string", "{\"tip\":\"wrap code in ```\"}", "{\"tip\":\"wrap code in ```\"}"},
		{"prose then fence", "Sure!\n```json\n{\"a\":1}\n```\nEnjoy", `{"a":1}`},
		{"single line fence", "```json{\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}
