package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Wizard drives the multi-step form. It mutates the session's FormState in
// place and persists a profile on final submission.
type Wizard struct {
	profiles ProfilesRepo
	now      func() time.Time
}

func NewWizard(profiles ProfilesRepo) *Wizard {
	return &Wizard{profiles: profiles, now: time.Now}
}

// Advance applies one submission to state. Input problems never fail the
// call: missing text reads as "", bad numbers fall back to their defaults.
// Errors come only from validating or persisting the final profile; the
// merged answers are kept in state either way.
func (w *Wizard) Advance(ctx context.Context, state *domain.FormState, in Inputs) (ViewState, error) {
	switch {
	case in.Has(FieldStartFresh):
		state.Reset()
		return View(state), nil
	case in.Has(FieldTemplate) && state.Step == domain.StepTemplate:
		if t := strings.ToLower(strings.TrimSpace(in.Text(FieldTemplate))); t != "" {
			if !layout.Known(t) {
				slog.Warn("unknown template selected, renders will use the fallback", "template", t, "fallback", layout.FallbackName)
			}
			state.Template = t
		}
		state.Step = domain.StepContact
		return View(state), nil
	case in.Has(FieldContinueEditing):
		state.Step = domain.StepContact
		return View(state), nil
	case in.Has(FieldRestartTemplates):
		state.Step = domain.StepTemplate
		return View(state), nil
	}

	current := in.Int(FieldCurrentStep, state.Step)
	mergeStep(current, &state.FormData, in)

	switch {
	case in.Has(FieldPreview):
		state.Step = domain.StepPreview
		view := View(state)
		view.PreviewNow = true
		return view, nil
	case in.Has(FieldSubmit):
		p, err := w.submit(ctx, state)
		if err != nil {
			return View(state), err
		}
		state.Step = domain.StepComplete
		view := View(state)
		view.ProfileID = &p.ID
		return view, nil
	}

	target := current
	if in.Has(FieldNextStep) {
		target = in.Int(FieldNextStep, current)
	} else if in.Has(FieldPreviousStep) {
		target = in.Int(FieldPreviousStep, current)
	}
	state.Step = clampStep(target)
	return View(state), nil
}

func (w *Wizard) submit(ctx context.Context, state *domain.FormState) (domain.Profile, error) {
	p := state.FormData.Profile()
	if err := model.ValidateProfile(p); err != nil {
		return domain.Profile{}, err
	}
	p.ID = uuid.New()
	p.CreatedAt = w.now().UTC()
	if err := w.profiles.Create(ctx, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	slog.Info("profile created", "id", p.ID.String(), "template", state.Template)
	return p, nil
}

// clampStep keeps navigation inside the editable steps; completion is only
// reachable through submit.
func clampStep(step int) int {
	if step < domain.StepTemplate {
		return domain.StepTemplate
	}
	if step > domain.StepPreview {
		return domain.StepPreview
	}
	return step
}

// View projects a FormState into what the wizard page renders.
func View(state *domain.FormState) ViewState {
	fd := state.FormData
	projects := make([]ProjectView, 0, len(fd.ProjectsList))
	for _, p := range fd.ProjectsList {
		projects = append(projects, ProjectView{ProjectEntry: p, PointLines: model.PointLines(p.Points)})
	}
	return ViewState{
		Step:            state.Step,
		Template:        state.Template,
		FormData:        FormDataView{FormData: fd, ProjectsList: projects},
		HasPreviousData: !fd.IsEmpty(),
	}
}
