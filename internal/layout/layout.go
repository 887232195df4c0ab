// Package layout turns a document model into a styled, paginated HTML page.
// Every template shares the same algorithm; a Style record supplies the
// differences.
package layout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

//go:embed layout.html
var files embed.FS

var page = template.Must(template.New("layout.html").ParseFS(files, "layout.html"))

// block is one rendered section. Only the fields relevant to the section
// kind are set.
type block struct {
	Kind       SectionKind
	Heading    string
	Paragraphs []string
	Education  *model.Education
	Bullets    []string
	Skills     []model.SkillLine
	Lines      []string
}

type pageData struct {
	Doc    model.Document
	Style  Style
	CSS    template.CSS
	Blocks []block
}

// RenderHTML lays out doc with the given style. Output is deterministic for
// a given (doc, style) pair.
func RenderHTML(doc model.Document, s Style) ([]byte, error) {
	data := pageData{
		Doc:    doc,
		Style:  s,
		CSS:    stylesheet(s),
		Blocks: blocks(doc, s),
	}
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute layout %s: %w", s.Name, err)
	}
	return buf.Bytes(), nil
}

func blocks(doc model.Document, s Style) []block {
	out := make([]block, 0, len(s.Sections))
	for _, sec := range s.Sections {
		b := block{Kind: sec.Kind, Heading: sec.Heading}
		switch sec.Kind {
		case SectionSummary:
			if !doc.HasSummary() {
				continue
			}
			b.Paragraphs = []string{doc.Summary}
		case SectionEducation:
			edu := doc.Education
			b.Education = &edu
		case SectionProjects:
			projectsBlock(&b, doc, s)
		case SectionSkills:
			b.Skills = doc.Skills
		case SectionCertifications:
			if !doc.HasCertifications() {
				continue
			}
			b.Lines = doc.Certifications
		}
		out = append(out, b)
	}
	return out
}

func projectsBlock(b *block, doc model.Document, s Style) {
	if s.Projects == ProjectsParagraph {
		if doc.ProjectsText == "" {
			b.Paragraphs = placeholder(s)
			return
		}
		b.Paragraphs = []string{strings.Join(strings.Fields(doc.ProjectsText), " ")}
		return
	}
	if len(doc.Projects) == 0 {
		b.Paragraphs = placeholder(s)
		return
	}
	b.Bullets = doc.Projects
}

func placeholder(s Style) []string {
	if s.ProjectsPlaceholder == "" {
		return nil
	}
	return []string{s.ProjectsPlaceholder}
}

func stylesheet(s Style) template.CSS {
	f := s.Fonts
	p := s.Palette
	m := s.Margins

	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: A4; margin: %gmm %gmm %gmm %gmm; }\n", m.Top, m.Right, m.Bottom, m.Left)
	fmt.Fprintf(&b, "body { margin: 0; font-family: %s; color: %s; font-size: %gpt; font-weight: %d; line-height: 1.35; }\n",
		f.Family, p.Text, f.Body.SizePt, f.Body.Weight)
	fmt.Fprintf(&b, ".name { margin: 0; color: %s; font-size: %gpt; font-weight: %d; }\n", p.Accent, f.Name.SizePt, f.Name.Weight)
	fmt.Fprintf(&b, ".subtitle { margin: 2pt 0 0; color: %s; }\n", p.Muted)
	if s.ContactAlign != AlignNone {
		fmt.Fprintf(&b, "header { text-align: %s; }\n", s.ContactAlign)
		fmt.Fprintf(&b, ".contact { color: %s; font-size: %gpt; font-weight: %d; }\n", p.Muted, f.Contact.SizePt, f.Contact.Weight)
	}
	fmt.Fprintf(&b, ".contact a { color: %s; text-decoration: none; }\n", p.Accent)
	fmt.Fprintf(&b, "h2 { margin: 12pt 0 4pt; color: %s; font-size: %gpt; font-weight: %d; break-after: avoid-page; }\n",
		p.Accent, f.Heading.SizePt, f.Heading.Weight)
	if s.HeadingRule {
		fmt.Fprintf(&b, "h2 { border-bottom: 0.75pt solid %s; padding-bottom: 2pt; }\n", p.Rule)
	}
	fmt.Fprintf(&b, "p { margin: 0 0 3pt; }\n")
	fmt.Fprintf(&b, ".degree { font-weight: 700; }\n")
	fmt.Fprintf(&b, ".university { color: %s; }\n", p.Muted)
	fmt.Fprintf(&b, "ul { list-style: none; margin: 0; padding: 0; }\n")
	fmt.Fprintf(&b, "li { margin: 0 0 2pt; font-size: %gpt; font-weight: %d; break-inside: avoid-page; }\n", f.Bullet.SizePt, f.Bullet.Weight)
	fmt.Fprintf(&b, ".glyph { color: %s; }\n", p.Accent)
	return template.CSS(b.String())
}

// Filename is the suggested download name, CV_<name>_<Label>.pdf.
func Filename(name string, s Style) string {
	return fmt.Sprintf("CV_%s_%s.pdf", safeName(name), s.Label)
}

func safeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Resume"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return '_'
		case strings.ContainsRune(`"\/:*?<>|`, r):
			return '_'
		}
		return r
	}, name)
}
