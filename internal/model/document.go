package model

// Render-ready projection of a stored profile. Built fresh for every render.

import (
	"strings"

	"resume-builder/internal/domain"
)

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ContactItem is one entry of the header contact line. Link is set for
// GitHub/LinkedIn entries and nil for plain text.
type ContactItem struct {
	Text string `json:"text"`
	Link *Link  `json:"link,omitempty"`
}

type Header struct {
	Name    string        `json:"name"`
	Contact []ContactItem `json:"contact"`
}

type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
}

// SkillLine is a formatted skills row. Lines written as "label: value" keep
// the label apart so it can be emphasized.
type SkillLine struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

func (l SkillLine) HasLabel() bool { return l.Label != "" }

type Document struct {
	Header         Header      `json:"header"`
	Summary        string      `json:"summary,omitempty"`
	Education      Education   `json:"education"`
	Projects       []string    `json:"projects"`
	ProjectsText   string      `json:"projects_text"`
	Skills         []SkillLine `json:"skills"`
	Certifications []string    `json:"certifications,omitempty"`
}

func (d Document) HasSummary() bool        { return d.Summary != "" }
func (d Document) HasCertifications() bool { return len(d.Certifications) > 0 }

// BuildDocument maps a profile into the structure every layout consumes.
func BuildDocument(p domain.Profile) Document {
	doc := Document{
		Header: Header{
			Name:    strings.ToUpper(strings.TrimSpace(p.Name)),
			Contact: contactLine(p),
		},
		Education: Education{
			Degree:     strings.TrimSpace(p.Degree),
			University: strings.TrimSpace(p.University),
		},
		Projects:     projectBullets(p.Projects),
		ProjectsText: strings.TrimSpace(p.Projects),
		Skills:       FormatSkills(p.Skills),
	}
	if s := strings.TrimSpace(p.Summary); s != "" {
		doc.Summary = s
	}
	if c := strings.TrimSpace(p.Certifications); c != "" {
		doc.Certifications = splitLines(c)
	}
	return doc
}

func contactLine(p domain.Profile) []ContactItem {
	var items []ContactItem
	if e := strings.TrimSpace(p.Email); e != "" {
		items = append(items, ContactItem{Text: e})
	}
	if ph := strings.TrimSpace(p.Phone); ph != "" {
		items = append(items, ContactItem{Text: ph})
	}
	if u := strings.TrimSpace(p.GithubURL); u != "" {
		items = append(items, ContactItem{Text: "GitHub", Link: &Link{Label: "GitHub", URL: u}})
	}
	if u := strings.TrimSpace(p.LinkedinURL); u != "" {
		items = append(items, ContactItem{Text: "LinkedIn", Link: &Link{Label: "LinkedIn", URL: u}})
	}
	return items
}

// projectBullets yields one bullet per non-blank line of the flattened
// projects text. The stored glyph is dropped so each layout can apply its own.
func projectBullets(flat string) []string {
	out := []string{}
	for _, line := range splitLines(flat) {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, ProjectBullet))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// FormatSkills splits raw skills text into display lines. A line containing
// a colon is split at the first colon into label and value; other lines pass
// through unchanged. Blank lines are dropped.
func FormatSkills(raw string) []SkillLine {
	out := []SkillLine{}
	for _, line := range splitLines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			out = append(out, SkillLine{Value: line})
			continue
		}
		out = append(out, SkillLine{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
	}
	return out
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
