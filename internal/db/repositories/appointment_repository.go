package repositories

import (
	"context"

	"patient_feedback_service/internal/db/models"
)

type appointmentRepository struct {
	repository
}

type AppointmentRepository interface {
	Create(ctx context.Context, request *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, request *models.Appointment) (*models.Appointment, error)
	GetOne(ctx context.Context, appointmentID string) (*models.Appointment, error)
	GetOneByToken(ctx context.Context, token string) (*models.Appointment, error)
	GetOneByCalendarEventID(ctx context.Context, calendarEventID string) (*models.Appointment, error)
	Count(ctx context.Context) (int, error)
}

func (r *appointmentRepository) Create(ctx context.Context, request *models.Appointment) (*models.Appointment, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.GetOne(ctx, request.ID)
}

func (r *appointmentRepository) Update(ctx context.Context, request *models.Appointment) (*models.Appointment, error) {
	result, err := r.db.ModelContext(ctx, request).WherePK().Update()
	if err != nil {
		return nil, translateError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetOne(ctx, request.ID)
}

func (r *appointmentRepository) GetOne(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment := &models.Appointment{}

	err := r.db.ModelContext(ctx, appointment).
		Where("id = ?", appointmentID).
		Select()

	return r.one(appointment, err)
}

func (r *appointmentRepository) GetOneByToken(ctx context.Context, token string) (*models.Appointment, error) {
	appointment := &models.Appointment{}

	err := r.db.ModelContext(ctx, appointment).
		Where("token = ?", token).
		Select()

	return r.one(appointment, err)
}

func (r *appointmentRepository) GetOneByCalendarEventID(ctx context.Context, calendarEventID string) (*models.Appointment, error) {
	appointment := &models.Appointment{}

	err := r.db.ModelContext(ctx, appointment).
		Where("calendar_event_id = ?", calendarEventID).
		Select()

	return r.one(appointment, err)
}

func (r *appointmentRepository) Count(ctx context.Context) (int, error) {
	return r.db.ModelContext(ctx, (*models.Appointment)(nil)).Count()
}

func (r *appointmentRepository) one(appointment *models.Appointment, err error) (*models.Appointment, error) {
	if err != nil {
		return nil, translateError(err)
	}
	return appointment, nil
}
