package layout

import (
	"sort"
	"strings"
)

type SectionKind string

const (
	SectionSummary        SectionKind = "summary"
	SectionEducation      SectionKind = "education"
	SectionProjects       SectionKind = "projects"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
)

// Align controls how the contact line is placed. AlignNone leaves it in the
// body text style.
type Align string

const (
	AlignNone   Align = ""
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

type ProjectsMode int

const (
	ProjectsBullets ProjectsMode = iota
	ProjectsParagraph
)

// Margins in millimetres.
type Margins struct {
	Top, Right, Bottom, Left float64
}

type Palette struct {
	Text   string
	Accent string
	Muted  string
	Rule   string
}

type Font struct {
	SizePt float64
	Weight int
}

// Fonts holds the font per text role.
type Fonts struct {
	Family  string
	Name    Font
	Contact Font
	Heading Font
	Body    Font
	Bullet  Font
}

type Section struct {
	Kind    SectionKind
	Heading string
}

// Style is everything that distinguishes one template from another. The
// layout algorithm itself is shared.
type Style struct {
	Name         string
	Label        string
	Margins      Margins
	Palette      Palette
	Fonts        Fonts
	BulletGlyph  string
	ContactAlign Align
	Subtitle     string
	HeadingRule  bool
	Sections     []Section

	Projects ProjectsMode
	// ProjectsPlaceholder replaces an empty projects section when set.
	ProjectsPlaceholder string
}

// FallbackName is used for blank and unknown template names.
const FallbackName = "professional"

const projectsPlaceholder = "Project details are available on request."

var standardSections = []Section{
	{Kind: SectionSummary, Heading: "SUMMARY"},
	{Kind: SectionEducation, Heading: "EDUCATION"},
	{Kind: SectionProjects, Heading: "PROJECTS"},
	{Kind: SectionSkills, Heading: "SKILLS"},
	{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
}

var styles = map[string]Style{
	"classic": {
		Name:    "classic",
		Label:   "Classic",
		Margins: Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		Palette: Palette{Text: "#000000", Accent: "#000000", Muted: "#333333", Rule: "#000000"},
		Fonts: Fonts{
			Family:  `"Times New Roman", Times, serif`,
			Name:    Font{SizePt: 22, Weight: 700},
			Contact: Font{SizePt: 10, Weight: 400},
			Heading: Font{SizePt: 12, Weight: 700},
			Body:    Font{SizePt: 10.5, Weight: 400},
			Bullet:  Font{SizePt: 10.5, Weight: 400},
		},
		BulletGlyph:  "•",
		ContactAlign: AlignCenter,
		HeadingRule:  true,
		Sections:     standardSections,
	},
	"modern": {
		Name:    "modern",
		Label:   "Modern",
		Margins: Margins{Top: 16, Right: 18, Bottom: 16, Left: 18},
		Palette: Palette{Text: "#1f2328", Accent: "#1f6feb", Muted: "#57606a", Rule: "#d0d7de"},
		Fonts: Fonts{
			Family:  `Helvetica, Arial, sans-serif`,
			Name:    Font{SizePt: 24, Weight: 700},
			Contact: Font{SizePt: 9.5, Weight: 400},
			Heading: Font{SizePt: 11.5, Weight: 700},
			Body:    Font{SizePt: 10, Weight: 400},
			Bullet:  Font{SizePt: 10, Weight: 400},
		},
		BulletGlyph:  "▸",
		ContactAlign: AlignLeft,
		HeadingRule:  true,
		Sections: []Section{
			{Kind: SectionSummary, Heading: "PROFILE"},
			{Kind: SectionProjects, Heading: "EXPERIENCE"},
			{Kind: SectionSkills, Heading: "SKILLS"},
			{Kind: SectionEducation, Heading: "EDUCATION"},
			{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
		},
	},
	"minimal": {
		Name:    "minimal",
		Label:   "Minimal",
		Margins: Margins{Top: 25, Right: 25, Bottom: 25, Left: 25},
		Palette: Palette{Text: "#222222", Accent: "#222222", Muted: "#777777", Rule: "#ffffff"},
		Fonts: Fonts{
			Family:  `Helvetica, Arial, sans-serif`,
			Name:    Font{SizePt: 18, Weight: 300},
			Contact: Font{SizePt: 9, Weight: 300},
			Heading: Font{SizePt: 10, Weight: 600},
			Body:    Font{SizePt: 9.5, Weight: 300},
			Bullet:  Font{SizePt: 9.5, Weight: 300},
		},
		BulletGlyph:  "–",
		ContactAlign: AlignNone,
		Sections: []Section{
			{Kind: SectionSummary, Heading: "Summary"},
			{Kind: SectionEducation, Heading: "Education"},
			{Kind: SectionProjects, Heading: "Projects"},
			{Kind: SectionSkills, Heading: "Skills"},
			{Kind: SectionCertifications, Heading: "Certifications"},
		},
	},
	"professional": {
		Name:    "professional",
		Label:   "Professional",
		Margins: Margins{Top: 18, Right: 20, Bottom: 18, Left: 20},
		Palette: Palette{Text: "#1a202c", Accent: "#1a365d", Muted: "#4a5568", Rule: "#1a365d"},
		Fonts: Fonts{
			Family:  `Georgia, "Times New Roman", serif`,
			Name:    Font{SizePt: 22, Weight: 700},
			Contact: Font{SizePt: 10, Weight: 400},
			Heading: Font{SizePt: 12, Weight: 700},
			Body:    Font{SizePt: 10.5, Weight: 400},
			Bullet:  Font{SizePt: 10.5, Weight: 400},
		},
		BulletGlyph:  "•",
		ContactAlign: AlignCenter,
		Subtitle:     "Curriculum Vitae",
		HeadingRule:  true,
		Sections: []Section{
			{Kind: SectionSummary, Heading: "PROFESSIONAL SUMMARY"},
			{Kind: SectionProjects, Heading: "EXPERIENCE"},
			{Kind: SectionEducation, Heading: "EDUCATION"},
			{Kind: SectionSkills, Heading: "SKILLS"},
			{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
		},
	},
	"altacv": {
		Name:    "altacv",
		Label:   "AltaCV",
		Margins: Margins{Top: 14, Right: 16, Bottom: 14, Left: 16},
		Palette: Palette{Text: "#2e2e2e", Accent: "#66023c", Muted: "#5f5f5f", Rule: "#66023c"},
		Fonts: Fonts{
			Family:  `"Lato", Helvetica, Arial, sans-serif`,
			Name:    Font{SizePt: 26, Weight: 700},
			Contact: Font{SizePt: 9, Weight: 400},
			Heading: Font{SizePt: 13, Weight: 700},
			Body:    Font{SizePt: 9.5, Weight: 400},
			Bullet:  Font{SizePt: 9.5, Weight: 400},
		},
		BulletGlyph:  "◆",
		ContactAlign: AlignLeft,
		HeadingRule:  true,
		Sections: []Section{
			{Kind: SectionSummary, Heading: "ABOUT ME"},
			{Kind: SectionProjects, Heading: "EXPERIENCE"},
			{Kind: SectionEducation, Heading: "EDUCATION"},
			{Kind: SectionSkills, Heading: "STRENGTHS"},
			{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
		},
		Projects:            ProjectsParagraph,
		ProjectsPlaceholder: projectsPlaceholder,
	},
	"curve": {
		Name:    "curve",
		Label:   "Curve",
		Margins: Margins{Top: 15, Right: 18, Bottom: 15, Left: 18},
		Palette: Palette{Text: "#263238", Accent: "#00796b", Muted: "#546e7a", Rule: "#80cbc4"},
		Fonts: Fonts{
			Family:  `"Roboto", Helvetica, Arial, sans-serif`,
			Name:    Font{SizePt: 24, Weight: 500},
			Contact: Font{SizePt: 9.5, Weight: 400},
			Heading: Font{SizePt: 12, Weight: 500},
			Body:    Font{SizePt: 10, Weight: 400},
			Bullet:  Font{SizePt: 10, Weight: 400},
		},
		BulletGlyph:  "›",
		ContactAlign: AlignCenter,
		Subtitle:     "Résumé",
		Sections: []Section{
			{Kind: SectionSummary, Heading: "PROFILE"},
			{Kind: SectionEducation, Heading: "EDUCATION"},
			{Kind: SectionProjects, Heading: "EXPERIENCE"},
			{Kind: SectionSkills, Heading: "SKILLS"},
			{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
		},
		Projects:            ProjectsParagraph,
		ProjectsPlaceholder: projectsPlaceholder,
	},
	"hipster": {
		Name:    "hipster",
		Label:   "Hipster",
		Margins: Margins{Top: 12, Right: 14, Bottom: 12, Left: 14},
		Palette: Palette{Text: "#3b3b3b", Accent: "#d81b60", Muted: "#8d6e63", Rule: "#f8bbd0"},
		Fonts: Fonts{
			Family:  `"Courier New", Courier, monospace`,
			Name:    Font{SizePt: 28, Weight: 700},
			Contact: Font{SizePt: 9, Weight: 400},
			Heading: Font{SizePt: 12, Weight: 700},
			Body:    Font{SizePt: 9.5, Weight: 400},
			Bullet:  Font{SizePt: 9.5, Weight: 400},
		},
		BulletGlyph:  "★",
		ContactAlign: AlignLeft,
		Sections: []Section{
			{Kind: SectionSummary, Heading: "HELLO"},
			{Kind: SectionProjects, Heading: "THINGS I BUILT"},
			{Kind: SectionSkills, Heading: "TOOLBOX"},
			{Kind: SectionEducation, Heading: "EDUCATION"},
			{Kind: SectionCertifications, Heading: "CERTIFICATIONS"},
		},
		ProjectsPlaceholder: projectsPlaceholder,
	},
}

// Lookup returns the style for a template name, falling back to the
// professional style for blank or unknown names.
func Lookup(name string) Style {
	if s, ok := styles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return styles[FallbackName]
}

// Known reports whether name is one of the defined templates.
func Known(name string) bool {
	_, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Styles lists every template, sorted by name.
func Styles() []Style {
	out := make([]Style, 0, len(styles))
	for _, s := range styles {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
