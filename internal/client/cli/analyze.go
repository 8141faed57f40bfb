package cli

import (
	"context"
	"fmt"
	"os"
)

// getMultiline is an indirection for tests, same as getSimpleText.
var getMultiline = GetMultiline

// Analyze reads a block of text and prints the server's analysis of it.
func (a *App) Analyze(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter text to analyze", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.api.AnalyzeText(ctx, text)
	if err != nil {
		return err
	}

	fmt.Printf("Words: %d\n", result.Analysis.WordCount)
	fmt.Printf("Characters: %d\n", result.Analysis.CharCount)
	fmt.Printf("Most frequent word: %s\n", result.Analysis.MostFrequentWord)
	fmt.Printf("Sentiment score: %.3f\n", result.Analysis.SentimentScore)
	return nil
}
