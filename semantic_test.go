package main

import (
	"context"
	"os"
	"testing"
)

func TestGeminiSemanticDictionaryDefine(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	dict, err := NewGeminiSemanticDictionary(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer dict.Close()

	def, ok := dict.Define("ZEBRA")
	if !ok {
		t.Fatal("expected a definition for a common word")
	}
	if def == "" {
		t.Fatal("expected a non-empty definition")
	}
}

func TestGeminiSemanticDictionaryCachesResults(t *testing.T) {
	dict := &GeminiSemanticDictionary{cache: map[string]string{"ZEBRA": "striped equine"}}
	def, ok := dict.Define("ZEBRA")
	if !ok || def != "striped equine" {
		t.Fatalf("expected cached definition, got (%q, %v)", def, ok)
	}
}
