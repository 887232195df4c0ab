package domain

// Wizard steps.
const (
	StepTemplate = iota
	StepContact
	StepSummary
	StepProjects
	StepSkills
	StepEducation
	StepCertifications
	StepPreview
	StepComplete
)

// DefaultTemplate is the template a fresh session starts with.
const DefaultTemplate = "modern"

type ProjectEntry struct {
	Title  string `json:"title"`
	Points string `json:"points"`
}

type EducationEntry struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
}

// FormData accumulates wizard answers across steps.
type FormData struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	GithubURL      string           `json:"github_url,omitempty"`
	LinkedinURL    string           `json:"linkedin_url,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	Projects       string           `json:"projects,omitempty"`
	ProjectsList   []ProjectEntry   `json:"projects_list,omitempty"`
	Skills         string           `json:"skills,omitempty"`
	Degree         string           `json:"degree,omitempty"`
	University     string           `json:"university,omitempty"`
	EducationList  []EducationEntry `json:"education_list,omitempty"`
	Certifications string           `json:"certifications,omitempty"`
}

// IsEmpty reports whether no field holds a value.
func (f FormData) IsEmpty() bool {
	for _, s := range []string{
		f.Name, f.Email, f.Phone, f.GithubURL, f.LinkedinURL, f.Summary,
		f.Projects, f.Skills, f.Degree, f.University, f.Certifications,
	} {
		if s != "" {
			return false
		}
	}
	return len(f.ProjectsList) == 0 && len(f.EducationList) == 0
}

// Profile converts the accumulated answers into an unsaved record.
func (f FormData) Profile() Profile {
	return Profile{
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		GithubURL:      f.GithubURL,
		LinkedinURL:    f.LinkedinURL,
		Summary:        f.Summary,
		Degree:         f.Degree,
		University:     f.University,
		Projects:       f.Projects,
		Skills:         f.Skills,
		Certifications: f.Certifications,
	}
}

// FormState is the per-session wizard state.
type FormState struct {
	Step     int      `json:"step"`
	Template string   `json:"template"`
	FormData FormData `json:"form_data"`
}

// NewFormState returns the state a session starts with.
func NewFormState() *FormState {
	return &FormState{Step: StepTemplate, Template: DefaultTemplate}
}

// Reset clears the answers and returns to template selection.
func (s *FormState) Reset() {
	s.Step = StepTemplate
	s.Template = DefaultTemplate
	s.FormData = FormData{}
}
