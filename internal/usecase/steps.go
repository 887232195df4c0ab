package usecase

import (
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// stepMergers fold one step's submitted fields into the accumulated form
// data. Steps without an entry carry no fields.
var stepMergers = map[int]func(*domain.FormData, Inputs){
	domain.StepContact:        mergeContact,
	domain.StepSummary:        mergeSummary,
	domain.StepProjects:       mergeProjects,
	domain.StepSkills:         mergeSkills,
	domain.StepEducation:      mergeEducation,
	domain.StepCertifications: mergeCertifications,
}

func mergeStep(step int, fd *domain.FormData, in Inputs) {
	if merge, ok := stepMergers[step]; ok {
		merge(fd, in)
	}
}

func mergeContact(fd *domain.FormData, in Inputs) {
	fd.Name = in.Text("name")
	fd.Email = in.Text("email")
	fd.Phone = in.Text("phone")
	fd.GithubURL = in.Text("github_url")
	fd.LinkedinURL = in.Text("linkedin_url")
}

func mergeSummary(fd *domain.FormData, in Inputs) {
	fd.Summary = in.Text("summary")
}

func mergeProjects(fd *domain.FormData, in Inputs) {
	n := in.Count(FieldProjectsCount)
	list := make([]domain.ProjectEntry, 0, n)
	for i := 0; i < n; i++ {
		title := strings.TrimSpace(in.Text(indexed("project_title", i)))
		points := strings.TrimSpace(in.Text(indexed("project_points", i)))
		if title == "" && points == "" {
			continue
		}
		list = append(list, domain.ProjectEntry{Title: title, Points: points})
	}

	titles := make([]string, len(list))
	points := make([]string, len(list))
	for i, p := range list {
		titles[i] = p.Title
		points[i] = p.Points
	}
	fd.ProjectsList = list
	fd.Projects = model.FlattenProjects(titles, points)
}

func mergeSkills(fd *domain.FormData, in Inputs) {
	fd.Skills = in.Text("skills")
}

func mergeEducation(fd *domain.FormData, in Inputs) {
	n := in.Count(FieldEducationCount)
	list := make([]domain.EducationEntry, 0, n)
	for i := 0; i < n; i++ {
		degree := strings.TrimSpace(in.Text(indexed("degree", i)))
		university := strings.TrimSpace(in.Text(indexed("university", i)))
		if degree == "" && university == "" {
			continue
		}
		list = append(list, domain.EducationEntry{Degree: degree, University: university})
	}
	fd.EducationList = list

	// top-level fields mirror the first entry for renderers that read a single pair
	fd.Degree, fd.University = "", ""
	if len(list) > 0 {
		fd.Degree = list[0].Degree
		fd.University = list[0].University
	}
}

func mergeCertifications(fd *domain.FormData, in Inputs) {
	fd.Certifications = in.Text("certifications")
}
