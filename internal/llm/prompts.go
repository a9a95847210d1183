package llm

import (
	"fmt"
	"strings"

	"bookapi/internal/model"
)

// NoReviews is the digest returned for a book without reviews.
const NoReviews = "No reviews available."

const notAvailable = "N/A"

// BookContent is the input of an ad-hoc book summary.
type BookContent struct {
	Content string
	Title   string
	Author  string
}

func bookSummaryPrompt(in BookContent) string {
	return fmt.Sprintf(`
Summarize the following book in 3–4 sentences.

Title: %s
Author: %s

Content:
%s
`, orNA(in.Title), orNA(in.Author), in.Content)
}

func reviewSummaryPrompt(reviews []model.Review) string {
	blocks := make([]string, 0, len(reviews))
	for _, r := range reviews {
		blocks = append(blocks, fmt.Sprintf("Rating: %s/5.0\nReview: %s", model.FormatRating(r.Rating), r.ReviewText))
	}

	return `Please analyze the following book reviews and provide a concise summary (2-3 sentences) highlighting:
1. Overall sentiment (positive/negative/mixed)
2. Common themes or points mentioned
3. General consensus

Reviews:
` + strings.Join(blocks, "\n\n") + `

Summary:`
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
