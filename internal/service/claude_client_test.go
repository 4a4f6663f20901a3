package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uplevelsite/internal/model"
)

func TestClaudeClientComplete(t *testing.T) {
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "sk-test" {
			t.Errorf("X-Api-Key = %q", r.Header.Get("X-Api-Key"))
		}
		if r.Header.Get("Anthropic-Version") != anthropicVersion {
			t.Errorf("Anthropic-Version = %q", r.Header.Get("Anthropic-Version"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"Hello there"}]}`))
	}))
	defer srv.Close()

	client := NewClaudeClient("sk-test", "claude-test")
	client.endpoint = srv.URL

	reply, err := client.Complete(context.Background(), "be brief", []model.Message{
		{Role: model.RoleUser, Content: "hi"},
	}, 256)
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if reply != "Hello there" {
		t.Errorf("reply = %q", reply)
	}
	if gotReq.Model != "claude-test" || gotReq.System != "be brief" || gotReq.MaxTokens != 256 {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestClaudeClientNoAPIKey(t *testing.T) {
	client := NewClaudeClient("", "claude-test")
	_, err := client.Complete(context.Background(), "", []model.Message{{Role: model.RoleUser, Content: "hi"}}, 256)
	if err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestClaudeClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	client := NewClaudeClient("sk-test", "claude-test")
	client.endpoint = srv.URL

	_, err := client.Complete(context.Background(), "", []model.Message{{Role: model.RoleUser, Content: "hi"}}, 256)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error does not carry status: %v", err)
	}
}

func TestClaudeClientNoTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"tool_use"}]}`))
	}))
	defer srv.Close()

	client := NewClaudeClient("sk-test", "claude-test")
	client.endpoint = srv.URL

	_, err := client.Complete(context.Background(), "", []model.Message{{Role: model.RoleUser, Content: "hi"}}, 256)
	if err == nil {
		t.Fatal("expected error when no text block is returned")
	}
}
