package models

import "time"

// Vote is immutable once stored; at most one exists per token.
type Vote struct {
	tableName struct{} `pg:"votes"`

	ID        string    `json:"id" pg:",pk,type:uuid"`
	Token     string    `json:"token" pg:",notnull,unique"`
	Rating    int       `json:"note" pg:",notnull"`
	Comment   *string   `json:"commentaire"`
	VotedAt   time.Time `json:"dateVote" pg:",notnull"`
	CreatedAt time.Time `json:"createdAt" pg:",notnull"`
}

func (v *Vote) CommentText() string {
	if v.Comment == nil {
		return ""
	}
	return *v.Comment
}
