package main

import (
	"strings"
	"testing"

	"github.com/tomz197/bulletdodge/internal/store"
)

func TestRenderPage(t *testing.T) {
	var scores store.Memory
	page := renderPage("dodge.example.com", &scores)
	if !strings.Contains(page, "ssh -t dodge.example.com") {
		t.Error("expected SSH host in page")
	}
	if !strings.Contains(page, "no runs yet") {
		t.Error("expected empty best score text")
	}

	scores.SaveBest(12.5)
	page = renderPage("dodge.example.com", &scores)
	if !strings.Contains(page, "12.50 s") {
		t.Error("expected formatted best score")
	}
	if strings.Contains(page, "{{") {
		t.Error("unfilled placeholder left in page")
	}
}
