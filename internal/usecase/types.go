package usecase

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// Renderer converts a laid-out HTML page into a PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ProfilesRepo is the record store. Records are immutable, so it only
// creates and fetches.
type ProfilesRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	Fetch(ctx context.Context, id uuid.UUID) (domain.Profile, error)
}

type UsersRepo interface {
	Create(ctx context.Context, u domain.User) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// Archive stores rendered documents. Get returns domain.ErrNotFound for a
// missing key.
type Archive interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// ProjectView is a project entry with its point lines split out for
// direct enumeration.
type ProjectView struct {
	domain.ProjectEntry
	PointLines []string `json:"point_lines"`
}

type FormDataView struct {
	domain.FormData
	ProjectsList []ProjectView `json:"projects_list,omitempty"`
}

// ViewState is what the wizard page needs to draw the current step.
type ViewState struct {
	Step            int          `json:"step"`
	Template        string       `json:"template"`
	FormData        FormDataView `json:"form_data"`
	HasPreviousData bool         `json:"has_previous_data"`
	PreviewNow      bool         `json:"preview_now"`
	ProfileID       *uuid.UUID   `json:"profile_id,omitempty"`
}
