package http

import (
	"errors"
	"fmt"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

type Handler struct {
	wizard   *usecase.Wizard
	render   *usecase.RenderService
	auth     *usecase.AuthService
	sessions *session.Store
}

func NewHandler(w *usecase.Wizard, r *usecase.RenderService, a *usecase.AuthService, sessions *session.Store) *Handler {
	return &Handler{wizard: w, render: r, auth: a, sessions: sessions}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type templateInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	styles := layout.Styles()
	out := make([]templateInfo, 0, len(styles))
	for _, s := range styles {
		out = append(out, templateInfo{Name: s.Name, Label: s.Label})
	}
	return c.JSON(out)
}

func (h *Handler) Register(c *fiber.Ctx) error {
	user, fields, err := h.auth.Register(c.UserContext(),
		c.FormValue("email"), c.FormValue("password"), c.FormValue("password_confirm"))
	if err != nil {
		return writeError(c, err)
	}
	if !fields.Empty() {
		return fieldErrors(c, fields, nil)
	}
	if err := h.login(c, user); err != nil {
		return writeError(c, err)
	}
	slog.Info("user registered", "user_id", user.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	user, err := h.auth.Authenticate(c.UserContext(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		return writeError(c, err)
	}
	if err := h.login(c, user); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (h *Handler) login(c *fiber.Ctx, user domain.User) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	return startSession(sess, user)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return writeError(c, fmt.Errorf("load session: %w", err))
	}
	if err := sess.Destroy(); err != nil {
		return writeError(c, fmt.Errorf("destroy session: %w", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequireUser rejects requests without a logged-in session and hands the
// session to the next handler.
func (h *Handler) RequireUser(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return writeError(c, fmt.Errorf("load session: %w", err))
	}
	if id, _ := sess.Get(keyUserID).(string); id == "" {
		return message(c, fiber.StatusUnauthorized, "login required")
	}
	c.Locals(localSession, sess)
	return c.Next()
}

func (h *Handler) ShowWizard(c *fiber.Ctx) error {
	return c.JSON(usecase.View(loadState(currentSession(c))))
}

func (h *Handler) AdvanceWizard(c *fiber.Ctx) error {
	sess := currentSession(c)
	state := loadState(sess)

	view, advErr := h.wizard.Advance(c.UserContext(), state, collectInputs(c))
	if err := saveState(sess, state); err != nil {
		return writeError(c, err)
	}
	if err := sess.Save(); err != nil {
		return writeError(c, fmt.Errorf("save session: %w", err))
	}

	var verr *model.ValidationError
	if errors.As(advErr, &verr) {
		return fieldErrors(c, verr.Fields, fiber.Map{"state": view})
	}
	if advErr != nil {
		return writeError(c, advErr)
	}
	return c.JSON(view)
}

// RenderPDF streams the stored profile as an attachment, styled with the
// template currently chosen in the session.
func (h *Handler) RenderPDF(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return message(c, fiber.StatusNotFound, "not found")
	}
	state := loadState(currentSession(c))

	doc, err := h.render.Render(c.UserContext(), id, state.Template)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Body)
}

// collectInputs flattens form-encoded and multipart fields. The first value
// of a repeated field wins.
func collectInputs(c *fiber.Ctx) usecase.Inputs {
	in := usecase.Inputs{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		if _, ok := in[string(k)]; !ok {
			in[string(k)] = string(v)
		}
	})
	if form, err := c.MultipartForm(); err == nil {
		for k, vs := range form.Value {
			if _, ok := in[k]; !ok && len(vs) > 0 {
				in[k] = vs[0]
			}
		}
	}
	return in
}
