package repositories

import (
	"context"
	"sort"
	"sync"

	"patient_feedback_service/internal/db/models"
)

type memoryState struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	votes        map[string]*models.Vote
}

// memoryStore keeps everything in process memory. Every operation holds the
// state lock, and a transaction holds it for its whole duration, so
// transactions are serializable. A failed transaction restores the snapshot
// taken when it began.
type memoryStore struct {
	state *memoryState
	inTx  bool
}

func NewMemoryStore() Store {
	return &memoryStore{
		state: &memoryState{
			appointments: make(map[string]*models.Appointment),
			votes:        make(map[string]*models.Vote),
		},
	}
}

func (s *memoryStore) Appointments() AppointmentRepository {
	return &memoryAppointmentRepository{store: s}
}

func (s *memoryStore) Votes() VoteRepository {
	return &memoryVoteRepository{store: s}
}

func (s *memoryStore) RunInTransaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	appointments, votes := s.state.snapshot()
	if err := fn(&memoryStore{state: s.state, inTx: true}); err != nil {
		s.state.appointments, s.state.votes = appointments, votes
		return err
	}

	return nil
}

func (s *memoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.state.mu.Lock()
	return s.state.mu.Unlock
}

func (st *memoryState) snapshot() (map[string]*models.Appointment, map[string]*models.Vote) {
	appointments := make(map[string]*models.Appointment, len(st.appointments))
	for id, appointment := range st.appointments {
		appointments[id] = copyAppointment(appointment)
	}

	votes := make(map[string]*models.Vote, len(st.votes))
	for id, vote := range st.votes {
		votes[id] = copyVote(vote)
	}

	return appointments, votes
}

func copyAppointment(a *models.Appointment) *models.Appointment {
	c := *a
	return &c
}

func copyVote(v *models.Vote) *models.Vote {
	c := *v
	if v.Comment != nil {
		comment := *v.Comment
		c.Comment = &comment
	}
	return &c
}

type memoryAppointmentRepository struct {
	store *memoryStore
}

func (r *memoryAppointmentRepository) Create(_ context.Context, request *models.Appointment) (*models.Appointment, error) {
	defer r.store.lock()()

	appointments := r.store.state.appointments
	if _, ok := appointments[request.ID]; ok {
		return nil, ErrDuplicate
	}
	for _, existing := range appointments {
		if existing.Token == request.Token {
			return nil, ErrDuplicate
		}
		if request.CalendarEventID != "" && existing.CalendarEventID == request.CalendarEventID {
			return nil, ErrDuplicate
		}
	}

	appointments[request.ID] = copyAppointment(request)
	return copyAppointment(request), nil
}

func (r *memoryAppointmentRepository) Update(_ context.Context, request *models.Appointment) (*models.Appointment, error) {
	defer r.store.lock()()

	existing, ok := r.store.state.appointments[request.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if existing.Token != request.Token {
		for id, other := range r.store.state.appointments {
			if id != request.ID && other.Token == request.Token {
				return nil, ErrDuplicate
			}
		}
	}

	r.store.state.appointments[request.ID] = copyAppointment(request)
	return copyAppointment(request), nil
}

func (r *memoryAppointmentRepository) GetOne(_ context.Context, appointmentID string) (*models.Appointment, error) {
	defer r.store.lock()()

	appointment, ok := r.store.state.appointments[appointmentID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyAppointment(appointment), nil
}

func (r *memoryAppointmentRepository) GetOneByToken(_ context.Context, token string) (*models.Appointment, error) {
	return r.find(func(a *models.Appointment) bool { return a.Token == token })
}

// GetOneByCalendarEventID never matches an empty id, like a NULL column in postgres.
func (r *memoryAppointmentRepository) GetOneByCalendarEventID(_ context.Context, calendarEventID string) (*models.Appointment, error) {
	if calendarEventID == "" {
		return nil, ErrNotFound
	}
	return r.find(func(a *models.Appointment) bool { return a.CalendarEventID == calendarEventID })
}

func (r *memoryAppointmentRepository) Count(_ context.Context) (int, error) {
	defer r.store.lock()()
	return len(r.store.state.appointments), nil
}

func (r *memoryAppointmentRepository) find(match func(a *models.Appointment) bool) (*models.Appointment, error) {
	defer r.store.lock()()

	for _, appointment := range r.store.state.appointments {
		if match(appointment) {
			return copyAppointment(appointment), nil
		}
	}
	return nil, ErrNotFound
}

type memoryVoteRepository struct {
	store *memoryStore
}

func (r *memoryVoteRepository) Create(_ context.Context, request *models.Vote) (*models.Vote, error) {
	defer r.store.lock()()

	votes := r.store.state.votes
	if _, ok := votes[request.ID]; ok {
		return nil, ErrDuplicate
	}
	for _, existing := range votes {
		if existing.Token == request.Token {
			return nil, ErrDuplicate
		}
	}

	votes[request.ID] = copyVote(request)
	return copyVote(request), nil
}

func (r *memoryVoteRepository) GetOneByToken(_ context.Context, token string) (*models.Vote, error) {
	defer r.store.lock()()

	for _, vote := range r.store.state.votes {
		if vote.Token == token {
			return copyVote(vote), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryVoteRepository) GetMany(_ context.Context) ([]*models.Vote, error) {
	defer r.store.lock()()

	votes := make([]*models.Vote, 0, len(r.store.state.votes))
	for _, vote := range r.store.state.votes {
		votes = append(votes, copyVote(vote))
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].VotedAt.Before(votes[j].VotedAt)
	})

	return votes, nil
}

func (r *memoryVoteRepository) Count(_ context.Context) (int, error) {
	defer r.store.lock()()
	return len(r.store.state.votes), nil
}
