package main

import (
	"net/http"
	"testing"

	"github.com/fitforge/fitforge/internal/e2etest"
)

func Test_theme(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := t.Context()

	resp, err := client.Get(ctx, "/api/theme")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	var theme struct {
		Theme string `json:"theme"`
	}
	if err = e2etest.DecodeJSON(resp, &theme); err != nil {
		t.Fatalf("decode theme: %v", err)
	}
	if theme.Theme != "system" {
		t.Errorf("default theme = %q, want %q", theme.Theme, "system")
	}

	resp, err = client.PutJSON(ctx, "/api/theme", map[string]string{"theme": "dark"})
	if err != nil {
		t.Fatalf("put theme: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("put theme status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	resp, err = client.Get(ctx, "/api/theme")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if err = e2etest.DecodeJSON(resp, &theme); err != nil {
		t.Fatalf("decode theme: %v", err)
	}
	if theme.Theme != "dark" {
		t.Errorf("theme = %q, want %q", theme.Theme, "dark")
	}

	resp, err = client.PutJSON(ctx, "/api/theme", map[string]string{"theme": "neon"})
	if err != nil {
		t.Fatalf("put theme: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("invalid theme status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}
