package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const uniqueViolation = "23505"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the single storage capability shared by the services.
// Exactly one implementation is chosen at startup.
type Store interface {
	Appointments() AppointmentRepository
	Votes() VoteRepository
	// RunInTransaction calls fn with a Store bound to one transaction.
	// The transaction is rolled back when fn returns an error.
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error
}

type repository struct {
	db orm.DB
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pg.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Field('n'))
	}

	return err
}

type pgStore struct {
	db   *pg.DB
	conn orm.DB
}

func NewPgStore(db *pg.DB) Store {
	return &pgStore{db: db, conn: db}
}

func (s *pgStore) Appointments() AppointmentRepository {
	return &appointmentRepository{repository: repository{db: s.conn}}
}

func (s *pgStore) Votes() VoteRepository {
	return &voteRepository{repository: repository{db: s.conn}}
}

func (s *pgStore) RunInTransaction(ctx context.Context, fn func(tx Store) error) error {
	if _, ok := s.conn.(*pg.Tx); ok {
		return fn(s)
	}

	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(&pgStore{db: s.db, conn: tx})
	})
}
