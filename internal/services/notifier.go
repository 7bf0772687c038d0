package services

import (
	"context"

	"patient_feedback_service/internal/db/models"
)

type InvitationSender interface {
	SendFeedbackInvitation(ctx context.Context, to, token string) error
}

// NegativeRatingNotifier is the hook run after a vote below the positive threshold is stored.
type NegativeRatingNotifier interface {
	NotifyNegativeRating(ctx context.Context, vote *models.Vote) error
}

// NoopNotifier is used when negative ratings are followed up outside this service.
type NoopNotifier struct{}

func (NoopNotifier) NotifyNegativeRating(context.Context, *models.Vote) error {
	return nil
}
