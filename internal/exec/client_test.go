package exec

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeinterview/internal/models"
)

func TestExecuteWithoutServiceReturnsMock(t *testing.T) {
	c := NewClient("")
	result, err := c.Execute(context.Background(), "print(1)", models.LangPython)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(result.Output, "python") || result.Error != nil {
		t.Fatalf("unexpected mock result: %#v", result)
	}
}

func TestExecuteRelaysRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req runRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Code != "print(1)" || req.Language != models.LangPython {
			t.Errorf("unexpected request: %#v", req)
		}
		_ = json.NewEncoder(w).Encode(Result{Output: "1\n", ExecutionTime: 9})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	result, err := c.Execute(context.Background(), "print(1)", models.LangPython)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Output != "1\n" || result.ExecutionTime != 9 {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestExecuteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.Execute(context.Background(), "x", models.LangPython); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
