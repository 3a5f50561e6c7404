package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/mailer"
)

type fakeMailer struct {
	sent []mailer.ContactMessage
	id   string
	err  error
}

func (m *fakeMailer) SendContactMessage(_ context.Context, msg mailer.ContactMessage) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return m.id, nil
}

func newContactRouter(t *testing.T, m mailer.Mailer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, "/api", Handlers{
		Contact: NewContactHandler(m, zap.NewNop()),
	})
	return r
}

func TestContactEndpoint(t *testing.T) {
	m := &fakeMailer{id: "mail-123"}
	r := newContactRouter(t, m)

	w := doJSON(r, http.MethodPost, "/api/v1/contact",
		`{"name":"Alice","email":"alice@example.com","message":"Loved the Bangkok post!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email sent successfully")
	assert.Contains(t, w.Body.String(), "mail-123")

	require.Len(t, m.sent, 1)
	assert.Equal(t, "Alice", m.sent[0].Name)
	assert.Equal(t, "alice@example.com", m.sent[0].Email)
	assert.Equal(t, "Loved the Bangkok post!", m.sent[0].Message)
}

func TestContactEndpoint_Validation(t *testing.T) {
	m := &fakeMailer{id: "mail-123"}
	r := newContactRouter(t, m)

	w := doJSON(r, http.MethodPost, "/api/v1/contact",
		`{"name":"Alice","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/contact",
		`{"name":"Alice","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, m.sent)
}

func TestContactEndpoint_ProviderFailure(t *testing.T) {
	m := &fakeMailer{err: errors.New("provider down")}
	r := newContactRouter(t, m)

	w := doJSON(r, http.MethodPost, "/api/v1/contact",
		`{"name":"Alice","email":"alice@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email. Please try again later.")
}
