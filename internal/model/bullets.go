package model

import "strings"

// ProjectBullet prefixes point lines in the flattened projects text.
const ProjectBullet = "•"

// FlattenProjects renders project entries as the flat text stored on a
// profile: the title line, then one bulleted line per non-blank point.
func FlattenProjects(titles, points []string) string {
	var lines []string
	for i, title := range titles {
		if title != "" {
			lines = append(lines, title)
		}
		if i < len(points) {
			for _, p := range PointLines(points[i]) {
				lines = append(lines, ProjectBullet+" "+p)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// PointLines returns the trimmed non-blank lines of a multi-line points field.
func PointLines(points string) []string {
	out := []string{}
	for _, line := range splitLines(points) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
