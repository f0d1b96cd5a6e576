package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const cluePrompt = `You are an expert cruciverbist specializing in Islamic-themed
crossword puzzles for a 5x5 mini format.

Generate 7-10 diverse clue options for the word: %s
%s
Rules:
- Target audience: Muslims of all ages; clues must suit all ages.
- Prioritize clues with Islamic connections when possible.
- Support spelling variants: QURAN/KORAN, MUSA/MOSES, etc.
- Use "___" (three underscores) for blanks in clues.
- Keep each clue under 100 characters.
- Clue types to mix: analogy, dictionary, simple, phrase, idiom, sneaky.

Respond ONLY with JSON in this exact shape, no markdown:
{
  "word": "%s",
  "clues": [
    {"clue": "clue text", "type": "simple", "islamic": true}
  ]
}`

// GeneratedClue is one clue option returned by the model.
type GeneratedClue struct {
	Clue    string `json:"clue"`
	Type    string `json:"type"`
	Islamic bool   `json:"islamic"`
}

// GenerateClues asks Gemini for clue options for a word. hint is an
// optional context line (e.g. "Prophet Yusuf, interpreter of dreams")
// steering the model toward the intended sense of the word.
func (g *GeminiClient) GenerateClues(ctx context.Context, word, hint string) ([]GeneratedClue, error) {
	word = strings.ToUpper(strings.TrimSpace(word))

	hintLine := ""
	if hint != "" {
		hintLine = "Context: " + hint + "\n"
	}
	prompt := fmt.Sprintf(cluePrompt, word, hintLine, word)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var parsed struct {
		Word  string          `json:"word"`
		Clues []GeneratedClue `json:"clues"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parse clue JSON: %w\nraw response: %s", err, text)
	}
	if len(parsed.Clues) == 0 {
		return nil, fmt.Errorf("gemini returned no clues for %s", word)
	}

	return parsed.Clues, nil
}
