package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemindersRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/reminders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/reminders", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestReminderEmptyList(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "a@x.com")

	resp := env.request(t, http.MethodGet, "/api/reminders", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool              `json:"success"`
		Data    []models.Reminder `json:"data"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Success)
	require.NotNil(t, body.Data)
	assert.Len(t, body.Data, 0)
}

func TestReminderRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "a@x.com")

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{72 * time.Hour, 0, 24 * time.Hour} {
		resp := env.request(t, http.MethodPost, "/api/reminders", token, fiber.Map{
			"tankName":    "Community Tank",
			"type":        "water-change",
			"dueDateTime": base.Add(offset).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := env.request(t, http.MethodGet, "/api/reminders", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Reminder `json:"data"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 3)
	for i := 1; i < len(body.Data); i++ {
		assert.False(t, body.Data[i].DueDateTime.Before(body.Data[i-1].DueDateTime))
	}
}

func TestReminderInvalidType(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "a@x.com")

	resp := env.request(t, http.MethodPost, "/api/reminders", token, fiber.Map{
		"tankName":    "Tank",
		"type":        "polishing",
		"dueDateTime": time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestReminderDeleteForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerAndLogin(t, "alice@x.com")
	bob := env.registerAndLogin(t, "bob@x.com")

	resp := env.request(t, http.MethodPost, "/api/reminders", alice, fiber.Map{
		"tankName":    "Alice tank",
		"type":        "feed",
		"dueDateTime": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Reminder `json:"data"`
	}
	decode(t, resp, &created)

	resp = env.request(t, http.MethodDelete, "/api/reminders/"+created.Data.ID.String(), bob, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Still there for its owner.
	var count int64
	env.db.Model(&models.Reminder{}).Where("id = ?", created.Data.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	resp = env.request(t, http.MethodDelete, "/api/reminders/"+created.Data.ID.String(), alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestReminderDeleteUnknown(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "a@x.com")

	resp := env.request(t, http.MethodDelete, "/api/reminders/0e0b5e9e-0000-4000-8000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodDelete, "/api/reminders/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReminderComplete(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "a@x.com")

	resp := env.request(t, http.MethodPost, "/api/reminders", token, fiber.Map{
		"tankName":    "Tank",
		"type":        "cleaning",
		"dueDateTime": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Reminder `json:"data"`
	}
	decode(t, resp, &created)

	resp = env.request(t, http.MethodPatch, "/api/reminders/"+created.Data.ID.String()+"/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var completed struct {
		Data models.Reminder `json:"data"`
	}
	decode(t, resp, &completed)
	assert.Equal(t, models.ReminderStatusCompleted, completed.Data.Status)
}
