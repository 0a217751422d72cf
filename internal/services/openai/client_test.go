package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursecast/internal/services/openai"
)

func TestCompleteReturnsContent(t *testing.T) {
	var gotAuth, gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(payload.Messages) == 1 {
			gotPrompt = payload.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  generated text "},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL, Model: "gpt-4o-mini"})
	content, err := client.Complete(context.Background(), "write a haiku")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "generated text" {
		t.Fatalf("content = %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPrompt != "write a haiku" {
		t.Fatalf("prompt = %q", gotPrompt)
	}
}

func TestCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "k", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "http 429") {
		t.Fatalf("expected http 429 error, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "k", BaseURL: server.URL})
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteRequiresKeyAndPrompt(t *testing.T) {
	client := openai.NewClient(openai.Config{})
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without api key")
	}
	client = openai.NewClient(openai.Config{APIKey: "k"})
	if _, err := client.Complete(context.Background(), "  "); err == nil {
		t.Fatal("expected error without prompt")
	}
}

func TestPromptsEmbedMaterial(t *testing.T) {
	material := "cells divide by mitosis"
	for name, prompt := range map[string]string{
		"summary":   openai.SummaryPrompt(material),
		"podcast":   openai.PodcastPrompt(material),
		"narration": openai.NarrationPrompt(material),
		"slides":    openai.SlidesPrompt(material),
		"scenes":    openai.ScenesPrompt(material),
		"quiz":      openai.QuizPrompt(material),
	} {
		if !strings.Contains(prompt, material) {
			t.Errorf("%s prompt missing material", name)
		}
	}
	if !strings.Contains(openai.PodcastPrompt(material), "[[SECTION_BREAK]]") {
		t.Error("podcast prompt missing section break instruction")
	}
	if !strings.Contains(openai.ScenesPrompt(material), "Illustration:") {
		t.Error("scenes prompt missing illustration instruction")
	}
}
