package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"patient_feedback_service/internal/db/models"
	"patient_feedback_service/internal/db/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenStatus struct {
	Valid        bool `json:"valid"`
	AlreadyVoted bool `json:"alreadyVoted"`
}

type SubmitVoteInput struct {
	Token   string
	Rating  int
	Comment *string
}

type VoteResult struct {
	Vote *models.Vote
	// RedirectURL is empty for ratings below the positive threshold.
	RedirectURL string
}

type Stats struct {
	TotalAppointments int     `json:"totalRdv"`
	TotalVotes        int     `json:"totalVotes"`
	AverageRating     float64 `json:"averageRating"`
	BadVotes          int     `json:"badVotes"`
}

type VoteService interface {
	ValidateToken(ctx context.Context, token string) (TokenStatus, error)
	// SubmitVote stores the single vote allowed for a token.
	// It fails with ErrValidation, ErrUnknownToken or ErrAlreadyVoted.
	SubmitVote(ctx context.Context, input SubmitVoteInput) (*VoteResult, error)
	Stats(ctx context.Context) (Stats, error)
}

type voteService struct {
	store        repositories.Store
	notifier     NegativeRatingNotifier
	policy       Policy
	alertTimeout time.Duration
	logger       *zap.SugaredLogger
}

func NewVoteService(
	store repositories.Store,
	notifier NegativeRatingNotifier,
	policy Policy,
	alertTimeout time.Duration,
	logger *zap.SugaredLogger,
) VoteService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}

	return &voteService{
		store:        store,
		notifier:     notifier,
		policy:       policy,
		alertTimeout: alertTimeout,
		logger:       logger,
	}
}

func (s *voteService) ValidateToken(ctx context.Context, token string) (TokenStatus, error) {
	if token == "" {
		return TokenStatus{}, nil
	}

	_, err := s.store.Appointments().GetOneByToken(ctx, token)
	if errors.Is(err, repositories.ErrNotFound) {
		return TokenStatus{}, nil
	}
	if err != nil {
		return TokenStatus{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	_, err = s.store.Votes().GetOneByToken(ctx, token)
	switch {
	case err == nil:
		return TokenStatus{Valid: true, AlreadyVoted: true}, nil
	case errors.Is(err, repositories.ErrNotFound):
		return TokenStatus{Valid: true}, nil
	default:
		return TokenStatus{}, fmt.Errorf("failed to get vote: %w", err)
	}
}

func (s *voteService) SubmitVote(ctx context.Context, input SubmitVoteInput) (*VoteResult, error) {
	if !s.policy.IsValidRating(input.Rating) {
		return nil, ErrInvalidRating
	}

	comment, err := s.policy.NormalizeComment(input.Comment)
	if err != nil {
		return nil, err
	}

	if input.Token == "" {
		return nil, ErrUnknownToken
	}

	now := time.Now().UTC()
	request := &models.Vote{
		ID:        uuid.NewString(),
		Token:     input.Token,
		Rating:    input.Rating,
		Comment:   comment,
		VotedAt:   now,
		CreatedAt: now,
	}

	var vote *models.Vote
	err = s.store.RunInTransaction(ctx, func(tx repositories.Store) error {
		created, err := s.insertOnce(ctx, tx, request)
		vote = created
		return err
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrAlreadyVoted
	}
	if err != nil {
		return nil, err
	}

	if !s.policy.IsPositive(vote.Rating) {
		s.notifyNegative(ctx, vote)
	}

	return &VoteResult{Vote: vote, RedirectURL: s.policy.RedirectFor(vote.Rating)}, nil
}

// insertOnce runs inside the transaction. The unique index on votes.token
// decides between racing submissions; the lookups only make the common
// case cheap and give the clearer error.
func (s *voteService) insertOnce(ctx context.Context, tx repositories.Store, request *models.Vote) (*models.Vote, error) {
	_, err := tx.Appointments().GetOneByToken(ctx, request.Token)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknownToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	_, err = tx.Votes().GetOneByToken(ctx, request.Token)
	if err == nil {
		return nil, ErrAlreadyVoted
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	vote, err := tx.Votes().Create(ctx, request)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrAlreadyVoted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}

	return vote, nil
}

func (s *voteService) notifyNegative(ctx context.Context, vote *models.Vote) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.alertTimeout)
	defer cancel()

	if err := s.notifier.NotifyNegativeRating(ctx, vote); err != nil {
		s.logger.Errorw("failed to send negative rating alert",
			"error", err,
			"voteID", vote.ID,
			"rating", vote.Rating,
		)
	}
}

func (s *voteService) Stats(ctx context.Context) (Stats, error) {
	totalAppointments, err := s.store.Appointments().Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count appointments: %w", err)
	}

	votes, err := s.store.Votes().GetMany(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get votes: %w", err)
	}

	stats := Stats{
		TotalAppointments: totalAppointments,
		TotalVotes:        len(votes),
	}
	if len(votes) == 0 {
		return stats, nil
	}

	sum := 0
	for _, vote := range votes {
		sum += vote.Rating
		if !s.policy.IsPositive(vote.Rating) {
			stats.BadVotes++
		}
	}
	stats.AverageRating = math.Round(float64(sum)/float64(len(votes))*10) / 10

	return stats, nil
}
