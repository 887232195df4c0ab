package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is one completed résumé submission. Records are created once at
// the end of the wizard and never updated.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	GithubURL      string    `json:"github_url"`
	LinkedinURL    string    `json:"linkedin_url"`
	Summary        string    `json:"summary"`
	Degree         string    `json:"degree"`
	University     string    `json:"university"`
	Projects       string    `json:"projects"`
	Skills         string    `json:"skills"`
	Certifications string    `json:"certifications"`
	CreatedAt      time.Time `json:"created_at"`
}

// Fields returns the text fields keyed by their JSON names, the shape the
// profile schema validates.
func (p Profile) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":           p.Name,
		"email":          p.Email,
		"phone":          p.Phone,
		"github_url":     p.GithubURL,
		"linkedin_url":   p.LinkedinURL,
		"summary":        p.Summary,
		"degree":         p.Degree,
		"university":     p.University,
		"projects":       p.Projects,
		"skills":         p.Skills,
		"certifications": p.Certifications,
	}
}
