package models

import "time"

// Appointment is a completed appointment eligible for a feedback request.
// Token is assigned once at creation and never changes.
type Appointment struct {
	tableName struct{} `pg:"appointments"`

	ID              string    `json:"id" pg:",pk,type:uuid"`
	PatientEmail    string    `json:"emailClient" pg:"patient_email"`
	EndsAt          time.Time `json:"dateRdv" pg:",notnull"`
	InvitationSent  bool      `json:"mailEnvoye" pg:",notnull,use_zero"`
	Token           string    `json:"token" pg:",notnull,unique"`
	CalendarEventID string    `json:"calendarEventId" pg:"calendar_event_id"`
	CreatedAt       time.Time `json:"createdAt" pg:",notnull"`
	UpdatedAt       time.Time `json:"updatedAt" pg:",notnull"`
}

func (a *Appointment) HasPatientEmail() bool {
	return a.PatientEmail != ""
}
