package main

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration test, skipped unless GCP credentials are configured:
//
//	GCP_PROJECT_ID=my-project go test -run TestGenerateClues -v
func TestGenerateCluesIntegration(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping Gemini integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		t.Fatalf("NewGeminiClient: %v", err)
	}
	defer client.Close()

	clues, err := client.GenerateClues(ctx, "quran", "The holy book of Islam")
	if err != nil {
		t.Fatalf("GenerateClues: %v", err)
	}
	if len(clues) == 0 {
		t.Fatal("no clues returned")
	}
	for i, c := range clues {
		if c.Clue == "" {
			t.Errorf("clue %d has empty text: %+v", i, c)
		}
		t.Logf("clue %d [%s, islamic=%v]: %s", i, c.Type, c.Islamic, c.Clue)
	}
}
