package http

import (
	"encoding/json"
	"log/slog"
	"time"

	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	keyFormState = "form_state"
	keyUserID    = "user_id"
	localSession = "session"
	// SessionCookie is the cookie carrying the session id.
	SessionCookie = "session_id"
)

// NewSessionStore builds the session store. A nil storage keeps sessions in
// process memory.
func NewSessionStore(storage fiber.Storage, ttl time.Duration, secure bool) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     ttl,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// loadState decodes the form state kept in the session. Missing or unreadable
// state starts over from defaults.
func loadState(sess *session.Session) *domain.FormState {
	raw, ok := sess.Get(keyFormState).(string)
	if !ok || raw == "" {
		return domain.NewFormState()
	}
	var st domain.FormState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		slog.Warn("discarding unreadable form state", "error", err)
		return domain.NewFormState()
	}
	if st.Template == "" {
		st.Template = domain.DefaultTemplate
	}
	return &st
}

func saveState(sess *session.Session, st *domain.FormState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	sess.Set(keyFormState, string(b))
	return nil
}

// startSession replaces whatever session the client had with a fresh one
// bound to user and holding default form state.
func startSession(sess *session.Session, user domain.User) error {
	if err := sess.Reset(); err != nil {
		return err
	}
	sess.Set(keyUserID, user.ID.String())
	if err := saveState(sess, domain.NewFormState()); err != nil {
		return err
	}
	return sess.Save()
}

func currentSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(localSession).(*session.Session)
	return sess
}
