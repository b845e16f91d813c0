package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProviderGenerate(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq openaiEmbeddingRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float32{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "test-key", "text-embedding-ada-002")

	vec, err := provider.Generate(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if gotPath != "/embeddings" {
		t.Errorf("path = %q, want /embeddings", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "text-embedding-ada-002" || gotReq.Input != "hello world" {
		t.Errorf("request = %+v", gotReq)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Errorf("vec = %v, want [0.1 0.2 0.3]", vec)
	}
}

func TestOpenAIProviderRejectsEmptyInput(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "")

	tests := []string{"", "   ", "\n\t"}
	for _, input := range tests {
		if _, err := provider.Generate(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Generate(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
	if requests != 0 {
		t.Errorf("invalid input must be rejected before any remote call, got %d requests", requests)
	}
}

func TestOpenAIProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOpenAIProvider(server.URL, "k", "")

	if _, err := provider.Generate(context.Background(), "text"); err == nil {
		t.Fatal("Generate must surface non-200 responses as errors")
	}
}
