package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func TestToCalendarEvent_Timed(t *testing.T) {
	event, err := toCalendarEvent(&gcalendar.Event{
		Id:    "evt1",
		Start: &gcalendar.EventDateTime{DateTime: "2024-03-01T10:00:00+01:00"},
		End:   &gcalendar.EventDateTime{DateTime: "2024-03-01T10:30:00+01:00"},
		Attendees: []*gcalendar.EventAttendee{
			{Email: "room@example.com", Resource: true},
			{Email: "patient@example.com"},
			{Email: "second@example.com"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "evt1", event.ID)
	assert.False(t, event.AllDay)
	assert.True(t, event.End.Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, []string{"patient@example.com", "second@example.com"}, event.AttendeeEmails)
}

func TestToCalendarEvent_AllDay(t *testing.T) {
	event, err := toCalendarEvent(&gcalendar.Event{
		Id:    "evt2",
		Start: &gcalendar.EventDateTime{Date: "2024-03-01"},
		End:   &gcalendar.EventDateTime{Date: "2024-03-02"},
	})
	require.NoError(t, err)
	assert.True(t, event.AllDay)
	assert.True(t, event.Start.IsZero())
}

func TestToCalendarEvent_BadTime(t *testing.T) {
	_, err := toCalendarEvent(&gcalendar.Event{
		Id:    "evt3",
		Start: &gcalendar.EventDateTime{DateTime: "yesterday"},
		End:   &gcalendar.EventDateTime{DateTime: "2024-03-01T10:30:00Z"},
	})
	assert.Error(t, err)
}

func TestGoogleSource_ListEventsFollowsPages(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))

		page := gcalendar.Events{}
		if r.URL.Query().Get("pageToken") == "" {
			page.NextPageToken = "next"
			page.Items = []*gcalendar.Event{{
				Id:    "evt1",
				Start: &gcalendar.EventDateTime{DateTime: "2024-03-01T10:00:00Z"},
				End:   &gcalendar.EventDateTime{DateTime: "2024-03-01T10:30:00Z"},
			}}
		} else {
			page.Items = []*gcalendar.Event{
				{Id: "evt2", Status: "cancelled"},
				{
					Id:    "evt3",
					Start: &gcalendar.EventDateTime{DateTime: "2024-03-01T11:00:00Z"},
					End:   &gcalendar.EventDateTime{DateTime: "2024-03-01T11:30:00Z"},
				},
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	service, err := gcalendar.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	source := newGoogleSource(service, "primary", zap.NewNop().Sugar())

	events, err := source.ListEvents(context.Background(), time.Now().Add(-24*time.Hour), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	require.Len(t, events, 2)
	assert.Equal(t, "evt1", events[0].ID)
	assert.Equal(t, "evt3", events[1].ID)
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	require.NoError(t, SaveToken(path, token))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "refresh", loaded.RefreshToken)

	_, err = LoadToken(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
