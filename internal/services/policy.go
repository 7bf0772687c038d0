package services

import (
	"strings"
	"unicode/utf8"

	"patient_feedback_service/configs"

	"golang.org/x/text/unicode/norm"
)

// Policy holds the rating and token rules. It is a value: copies never change.
type Policy struct {
	MinRating         int
	MaxRating         int
	PositiveThreshold int
	ReviewURL         string
	MaxCommentLength  int
	TokenLength       int
}

func NewPolicy(rating configs.Rating, token configs.Token) Policy {
	return Policy{
		MinRating:         rating.MinRating,
		MaxRating:         rating.MaxRating,
		PositiveThreshold: rating.PositiveThreshold,
		ReviewURL:         rating.ReviewURL,
		MaxCommentLength:  rating.MaxCommentLength,
		TokenLength:       token.Length,
	}
}

func DefaultPolicy() Policy {
	return Policy{
		MinRating:         1,
		MaxRating:         5,
		PositiveThreshold: 4,
		ReviewURL:         "https://www.podialpes.com/",
		MaxCommentLength:  500,
		TokenLength:       48,
	}
}

func (p Policy) IsValidRating(rating int) bool {
	return rating >= p.MinRating && rating <= p.MaxRating
}

func (p Policy) IsPositive(rating int) bool {
	return rating >= p.PositiveThreshold
}

// RedirectFor returns the public review URL for a positive rating and "" otherwise.
func (p Policy) RedirectFor(rating int) string {
	if p.IsPositive(rating) {
		return p.ReviewURL
	}
	return ""
}

// NormalizeComment trims and NFC-normalizes a comment. Blank comments become nil.
func (p Policy) NormalizeComment(comment *string) (*string, error) {
	if comment == nil {
		return nil, nil
	}

	normalized := norm.NFC.String(strings.TrimSpace(*comment))
	if normalized == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(normalized) > p.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &normalized, nil
}
