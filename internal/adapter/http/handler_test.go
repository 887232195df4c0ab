package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	mu    sync.Mutex
	calls int
}

func (r *stubRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return []byte("%PDF-1.4\n" + html), nil
}

// client carries the session cookie between requests the way a browser does.
type client struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func newClient(t *testing.T) *client {
	t.Helper()
	db, err := repository.OpenSQLite(filepath.Join(t.TempDir(), "http.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	profiles := repository.NewSQLiteProfilesRepo(db)
	h := NewHandler(
		usecase.NewWizard(profiles),
		usecase.NewRenderService(profiles, &stubRenderer{}, nil),
		usecase.NewAuthService(repository.NewSQLiteUsersRepo(db)),
		NewSessionStore(nil, time.Hour, false),
	)
	return &client{t: t, app: NewApp(h)}
}

func (c *client) do(req *nethttp.Request) *nethttp.Response {
	c.t.Helper()
	if c.cookie != "" {
		req.AddCookie(&nethttp.Cookie{Name: SessionCookie, Value: c.cookie})
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookie {
			c.cookie = ck.Value
			if ck.MaxAge < 0 || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now())) {
				c.cookie = ""
			}
		}
	}
	return resp
}

func (c *client) get(path string) *nethttp.Response {
	return c.do(httptest.NewRequest(fiber.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) *nethttp.Response {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return c.do(req)
}

func decode(t *testing.T, resp *nethttp.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (c *client) register(email string) {
	resp := c.post("/auth/register", url.Values{
		"email": {email}, "password": {"s3cretpass"}, "password_confirm": {"s3cretpass"},
	})
	require.Equal(c.t, fiber.StatusCreated, resp.StatusCode)
	require.NotEmpty(c.t, c.cookie)
}

func (c *client) wizard(form url.Values) usecase.ViewState {
	resp := c.post("/wizard", form)
	require.Equal(c.t, fiber.StatusOK, resp.StatusCode)
	var view usecase.ViewState
	decode(c.t, resp, &view)
	return view
}

func fillProfile(c *client) usecase.ViewState {
	c.wizard(url.Values{"template": {"classic"}})
	c.wizard(url.Values{"current_step": {"1"}, "next_step": {"2"},
		"name": {"Jane Doe"}, "email": {"jane@example.com"}, "phone": {"555-0100"}})
	c.wizard(url.Values{"current_step": {"2"}, "next_step": {"3"}, "summary": {"Builds things."}})
	c.wizard(url.Values{"current_step": {"3"}, "next_step": {"4"}, "projects_count": {"1"},
		"project_title_0": {"Site"}, "project_points_0": {"built it\nshipped it"}})
	c.wizard(url.Values{"current_step": {"4"}, "next_step": {"5"}, "skills": {"Languages: Go"}})
	c.wizard(url.Values{"current_step": {"5"}, "next_step": {"6"}, "education_count": {"1"},
		"degree_0": {"BSc"}, "university_0": {"MIT"}})
	c.wizard(url.Values{"current_step": {"6"}, "preview": {"1"}, "certifications": {"CKA"}})
	return c.wizard(url.Values{"current_step": {"7"}, "submit": {"1"}})
}

func TestHealthAndTemplates(t *testing.T) {
	c := newClient(t)

	resp := c.get("/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []templateInfo
	decode(t, c.get("/templates"), &list)
	require.Len(t, list, 7)
	names := map[string]string{}
	for _, ti := range list {
		names[ti.Name] = ti.Label
	}
	assert.Equal(t, "AltaCV", names["altacv"])
	assert.Equal(t, "Professional", names["professional"])
}

func TestWizardRequiresLogin(t *testing.T) {
	c := newClient(t)

	assert.Equal(t, fiber.StatusUnauthorized, c.get("/wizard").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, c.post("/wizard", url.Values{"template": {"modern"}}).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, c.get("/profiles/"+uuid.NewString()+"/pdf").StatusCode)
}

func TestRegisterFieldErrors(t *testing.T) {
	c := newClient(t)

	resp := c.post("/auth/register", url.Values{
		"email": {"a@example.com"}, "password": {"short"}, "password_confirm": {"other"},
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Errors, "password")
	assert.Contains(t, body.Errors, "password_confirm")

	c.register("a@example.com")
	resp = c.post("/auth/register", url.Values{
		"email": {"A@example.com"}, "password": {"s3cretpass"}, "password_confirm": {"s3cretpass"},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestWizardFlowAndDownload(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")

	var start usecase.ViewState
	decode(t, c.get("/wizard"), &start)
	assert.Equal(t, 0, start.Step)
	assert.Equal(t, "modern", start.Template)
	assert.False(t, start.HasPreviousData)

	done := fillProfile(c)
	assert.Equal(t, 8, done.Step)
	require.NotNil(t, done.ProfileID)
	assert.Equal(t, "Site\n• built it\n• shipped it", done.FormData.Projects)

	resp := c.get("/profiles/" + done.ProfileID.String() + "/pdf")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="CV_Jane Doe_Classic.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	assert.Contains(t, string(body), "JANE DOE")
}

func TestRenderUnknownProfile(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")

	assert.Equal(t, fiber.StatusNotFound, c.get("/profiles/"+uuid.NewString()+"/pdf").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, c.get("/profiles/not-a-uuid/pdf").StatusCode)
}

func TestSubmitInvalidKeepsState(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")

	resp := c.post("/wizard", url.Values{"current_step": {"1"}, "submit": {"1"},
		"name": {strings.Repeat("x", 201)}})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Errors map[string][]string `json:"errors"`
		State  usecase.ViewState   `json:"state"`
	}
	decode(t, resp, &body)
	assert.Contains(t, body.Errors, "name")
	assert.Equal(t, 0, body.State.Step)

	var view usecase.ViewState
	decode(t, c.get("/wizard"), &view)
	assert.Len(t, view.FormData.Name, 201)
}

func TestMultipartSubmission(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")
	c.wizard(url.Values{"template": {"minimal"}})

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("current_step", "2"))
	require.NoError(t, w.WriteField("summary", "From a multipart form."))
	require.NoError(t, w.WriteField("next_step", "3"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/wizard", buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp := c.do(req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view usecase.ViewState
	decode(t, resp, &view)
	assert.Equal(t, 3, view.Step)
	assert.Equal(t, "minimal", view.Template)
	assert.Equal(t, "From a multipart form.", view.FormData.Summary)
}

func TestLogoutAndLoginResetState(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")
	c.wizard(url.Values{"template": {"hipster"}})
	c.wizard(url.Values{"current_step": {"2"}, "summary": {"kept"}, "next_step": {"3"}})

	assert.Equal(t, fiber.StatusNoContent, c.post("/auth/logout", nil).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, c.get("/wizard").StatusCode)

	resp := c.post("/auth/login", url.Values{"email": {"jane@example.com"}, "password": {"wrong-password"}})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var msg struct {
		Message string `json:"message"`
	}
	decode(t, resp, &msg)
	assert.Equal(t, "invalid email or password", msg.Message)

	resp = c.post("/auth/login", url.Values{"email": {"JANE@example.com"}, "password": {"s3cretpass"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view usecase.ViewState
	decode(t, c.get("/wizard"), &view)
	assert.Equal(t, 0, view.Step)
	assert.Equal(t, "modern", view.Template)
	assert.False(t, view.HasPreviousData)
}

func TestLoginRegeneratesSessionID(t *testing.T) {
	c := newClient(t)
	c.register("jane@example.com")
	before := c.cookie

	resp := c.post("/auth/login", url.Values{"email": {"jane@example.com"}, "password": {"s3cretpass"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, c.cookie)
	assert.NotEqual(t, before, c.cookie)
}
