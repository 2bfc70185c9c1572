package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeinterview/internal/exec"
	"codeinterview/internal/store"
	"codeinterview/internal/utils"
)

func TestRouterRoutes(t *testing.T) {
	handler := New(utils.NewLogger(), store.NewMemory(), exec.NewClient(""), "Anonymous")
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, err = http.Post(server.URL+"/api/rooms", "application/json", nil)
	if err != nil {
		t.Fatalf("post rooms: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp, err = http.Get(server.URL + "/nope")
	if err != nil {
		t.Fatalf("get unknown: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
