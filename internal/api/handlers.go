package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"patient_feedback_service/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	appointments services.AppointmentService
	votes        services.VoteService
	policy       services.Policy
	logger       *zap.SugaredLogger
}

func NewHandler(
	appointments services.AppointmentService,
	votes services.VoteService,
	policy services.Policy,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		appointments: appointments,
		votes:        votes,
		policy:       policy,
		logger:       logger,
	}
}

type voteRequest struct {
	Token       string  `json:"token"`
	Note        *int    `json:"note"`
	Commentaire *string `json:"commentaire"`
}

type voteResponse struct {
	OK          bool   `json:"ok,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

func (h *Handler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var request voteRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}
	if request.Note == nil {
		h.writeServiceError(w, services.ErrInvalidRating)
		return
	}

	result, err := h.votes.SubmitVote(r.Context(), services.SubmitVoteInput{
		Token:   request.Token,
		Rating:  *request.Note,
		Comment: request.Commentaire,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if result.RedirectURL != "" {
		writeJSON(w, http.StatusCreated, voteResponse{RedirectURL: result.RedirectURL})
		return
	}
	writeJSON(w, http.StatusCreated, voteResponse{OK: true})
}

func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	status, err := h.votes.ValidateToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type createAppointmentRequest struct {
	EmailClient     string `json:"emailClient"`
	DateRdv         string `json:"dateRdv"`
	CalendarEventID string `json:"calendarEventId"`
}

func (r createAppointmentRequest) toInput() (services.CreateAppointmentInput, error) {
	email := strings.TrimSpace(r.EmailClient)
	if email != "" {
		address, err := mail.ParseAddress(email)
		if err != nil || address.Address != email {
			return services.CreateAppointmentInput{}, errors.New("emailClient must be an email")
		}
	}

	if r.DateRdv == "" {
		return services.CreateAppointmentInput{}, errors.New("dateRdv is required")
	}
	endsAt, err := parseDateRdv(r.DateRdv)
	if err != nil {
		return services.CreateAppointmentInput{}, errors.New("dateRdv must be an ISO 8601 date")
	}

	return services.CreateAppointmentInput{
		CalendarEventID: strings.TrimSpace(r.CalendarEventID),
		PatientEmail:    email,
		EndsAt:          endsAt,
	}, nil
}

// parseDateRdv accepts a full timestamp or a bare YYYY-MM-DD date (midnight UTC).
func parseDateRdv(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var request createAppointmentRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	input, err := request.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	appointment, err := h.appointments.CreateFromEvent(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointment)
}

func (h *Handler) MarkInvitationSent(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointments.MarkInvitationSent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if appointment == nil {
		h.writeServiceError(w, services.ErrAppointmentNotFound)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *Handler) ResendInvitation(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointments.ResendInvitation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.votes.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrInvalidRating) {
		message := fmt.Sprintf("note must be between %d and %d", h.policy.MinRating, h.policy.MaxRating)
		writeError(w, http.StatusBadRequest, codeInvalidInput, message)
		return
	}

	status, code, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw("failed to handle request", "error", err)
	}
	writeError(w, status, code, message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

