package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	assistadapter "inkwell/internal/modules/assist/adapter/out"
	"inkwell/internal/modules/assist/domain"
)

func TestOllamaTransformerSendsChatRequest(t *testing.T) {
	t.Parallel()
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Stream bool `json:"stream"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  shorter text  "},"done":true}`))
	}))
	defer srv.Close()

	transformer := assistadapter.NewOllamaTransformer(srv.URL, "llama3.2")
	action := domain.Action{ID: "summarize", Title: "Summarize", Prompt: "Summarize this."}
	out, err := transformer.Transform(context.Background(), action, "a long passage")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if out != "shorter text" {
		t.Fatalf("expected trimmed reply, got %q", out)
	}
	if captured.Model != "llama3.2" {
		t.Fatalf("unexpected model %q", captured.Model)
	}
	if captured.Stream {
		t.Fatalf("expected stream disabled")
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", captured.Messages)
	}
	userMsg := captured.Messages[1].Content
	if !strings.Contains(userMsg, "Summarize this.") || !strings.Contains(userMsg, "a long passage") {
		t.Fatalf("expected prompt and text in user message, got %q", userMsg)
	}
}

func TestOllamaTransformerReportsServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer srv.Close()

	transformer := assistadapter.NewOllamaTransformer(srv.URL, "missing")
	_, err := transformer.Transform(context.Background(), domain.Action{ID: "summarize", Prompt: "p"}, "text")
	if err == nil {
		t.Fatalf("expected error on 500")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestOllamaTransformerDoctor(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	transformer := assistadapter.NewOllamaTransformer(srv.URL, "llama3.2")
	checks := transformer.Doctor(context.Background())
	if len(checks) != 1 || !checks[0].OK {
		t.Fatalf("expected healthy check, got %+v", checks)
	}

	srv.Close()
	checks = transformer.Doctor(context.Background())
	if len(checks) != 1 || checks[0].OK {
		t.Fatalf("expected failing check after shutdown, got %+v", checks)
	}
}
