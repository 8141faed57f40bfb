package services

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonreiter/govader"
)

// AnalyzeInput is the payload accepted by Analyze.
type AnalyzeInput struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// Analysis holds the computed text metrics.
type Analysis struct {
	WordCount        int     `json:"wordCount"`
	CharCount        int     `json:"charCount"`
	MostFrequentWord string  `json:"mostFrequentWord"`
	SentimentScore   float64 `json:"sentimentScore"`
}

// AnalysisResult is the full response: a request id, the computation
// timestamp, and the analysis itself.
type AnalysisResult struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Analysis  Analysis  `json:"analysis"`
}

// TextAnalysisService computes word/character counts, the most frequent
// word, and a sentiment score for a piece of text. It is stateless; the
// VADER analyzer is built once and reused across requests.
type TextAnalysisService struct {
	analyzer *govader.SentimentIntensityAnalyzer
	validate *validator.Validate
}

func NewTextAnalysisService() *TextAnalysisService {
	return &TextAnalysisService{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
		validate: newValidator(),
	}
}

// Analyze validates the input and computes the metrics. CharCount counts
// runes of the raw input; word splitting treats any non-letter/non-digit
// run as a separator; the most frequent word comparison is case-insensitive.
func (s *TextAnalysisService) Analyze(in AnalyzeInput) (*AnalysisResult, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}

	words := tokenize(in.Text)

	return &AnalysisResult{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Analysis: Analysis{
			WordCount:        len(words),
			CharCount:        len([]rune(in.Text)),
			MostFrequentWord: mostFrequentWord(words),
			SentimentScore:   s.analyzer.PolarityScores(in.Text).Compound,
		},
	}, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// mostFrequentWord returns the case-normalized word with the highest count.
// Ties resolve to whichever word was seen first.
func mostFrequentWord(words []string) string {
	if len(words) == 0 {
		return ""
	}

	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	best := order[0]
	for _, w := range order[1:] {
		if counts[w] > counts[best] {
			best = w
		}
	}
	return best
}
