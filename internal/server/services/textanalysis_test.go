package services

import (
	"errors"
	"strings"
	"testing"
)

func TestAnalyze_Counts(t *testing.T) {
	svc := NewTextAnalysisService()

	res, err := svc.Analyze(AnalyzeInput{Text: "the party was great, the beach was great fun"})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if res.Analysis.WordCount != 9 {
		t.Fatalf("expected 9 words, got %d", res.Analysis.WordCount)
	}
	if res.Analysis.CharCount != len("the party was great, the beach was great fun") {
		t.Fatalf("unexpected char count %d", res.Analysis.CharCount)
	}
	if res.ID == "" || res.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp to be set: %+v", res)
	}
}

func TestAnalyze_MostFrequentWordCaseInsensitive(t *testing.T) {
	svc := NewTextAnalysisService()

	res, err := svc.Analyze(AnalyzeInput{Text: "Beach beach cabin BEACH cabin"})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if res.Analysis.MostFrequentWord != "beach" {
		t.Fatalf("expected \"beach\", got %q", res.Analysis.MostFrequentWord)
	}
}

func TestAnalyze_SentimentSign(t *testing.T) {
	svc := NewTextAnalysisService()

	pos, err := svc.Analyze(AnalyzeInput{Text: "What a wonderful, amazing, fantastic party!"})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	neg, err := svc.Analyze(AnalyzeInput{Text: "This was a horrible, terrible, awful disaster."})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if pos.Analysis.SentimentScore <= 0 {
		t.Fatalf("expected positive sentiment, got %f", pos.Analysis.SentimentScore)
	}
	if neg.Analysis.SentimentScore >= 0 {
		t.Fatalf("expected negative sentiment, got %f", neg.Analysis.SentimentScore)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	svc := NewTextAnalysisService()

	_, err := svc.Analyze(AnalyzeInput{Text: ""})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for empty text, got %v", err)
	}
}

func TestAnalyze_TooLong(t *testing.T) {
	svc := NewTextAnalysisService()

	_, err := svc.Analyze(AnalyzeInput{Text: strings.Repeat("a", 10001)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for oversized text, got %v", err)
	}
}

func TestTokenize_PunctuationSeparates(t *testing.T) {
	words := tokenize("hello,world! it's  2026")
	want := []string{"hello", "world", "it", "s", "2026"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("got %v, want %v", words, want)
		}
	}
}
