package dalle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateFollowsImageURL(t *testing.T) {
	imageBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/images/generations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["model"] != "dall-e-3" {
			t.Errorf("model = %v", payload["model"])
		}
		if payload["size"] != "1024x1024" {
			t.Errorf("size = %v", payload["size"])
		}
		fmt.Fprintf(w, `{"data":[{"url":"%s/image.png"}]}`, server.URL)
	})
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(imageBytes)
	})

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	data, err := client.Generate(context.Background(), "a watercolor fox")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(data, imageBytes) {
		t.Errorf("image bytes = %v, want %v", data, imageBytes)
	}
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"content policy violation"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := client.Generate(context.Background(), "something"); err == nil {
		t.Fatal("expected error for http 400")
	} else if !strings.Contains(err.Error(), "400") {
		t.Errorf("error = %v, want status code mention", err)
	}
}

func TestGenerateEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	if _, err := client.Generate(context.Background(), "something"); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})
	if _, err := client.Generate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank prompt")
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
