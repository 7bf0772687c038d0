package repositories

import (
	"context"

	"patient_feedback_service/internal/db/models"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	// Create fails with ErrDuplicate when a vote already exists for the token.
	Create(ctx context.Context, request *models.Vote) (*models.Vote, error)
	GetOneByToken(ctx context.Context, token string) (*models.Vote, error)
	GetMany(ctx context.Context) ([]*models.Vote, error)
	Count(ctx context.Context) (int, error)
}

func (r *voteRepository) Create(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return request, nil
}

func (r *voteRepository) GetOneByToken(ctx context.Context, token string) (*models.Vote, error) {
	vote := &models.Vote{}

	err := r.db.ModelContext(ctx, vote).
		Where("token = ?", token).
		Select()
	if err != nil {
		return nil, translateError(err)
	}

	return vote, nil
}

func (r *voteRepository) GetMany(ctx context.Context) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		OrderExpr("voted_at ASC").
		Select()
	if err != nil {
		return nil, translateError(err)
	}

	return votes, nil
}

func (r *voteRepository) Count(ctx context.Context) (int, error) {
	return r.db.ModelContext(ctx, (*models.Vote)(nil)).Count()
}
