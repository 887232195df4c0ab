package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

const ContentTypePDF = "application/pdf"

type RenderedDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

// RenderService produces the downloadable document for a stored profile.
type RenderService struct {
	profiles ProfilesRepo
	renderer Renderer
	archive  Archive
}

// NewRenderService wires the render pipeline. archive may be nil.
func NewRenderService(profiles ProfilesRepo, r Renderer, archive Archive) *RenderService {
	return &RenderService{profiles: profiles, renderer: r, archive: archive}
}

// Render fetches profile id and renders it with the named template. The
// template is a render-time choice; unknown names use the fallback style.
// A missing profile yields domain.ErrNotFound.
func (s *RenderService) Render(ctx context.Context, id uuid.UUID, template string) (RenderedDocument, error) {
	p, err := s.profiles.Fetch(ctx, id)
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("fetch profile %s: %w", id, err)
	}
	style := layout.Lookup(template)
	key := archiveKey(id, style)

	if s.archive != nil {
		body, err := s.archive.Get(ctx, key)
		switch {
		case err == nil:
			slog.Debug("render served from archive", "key", key)
			return document(p, style, body), nil
		case !errors.Is(err, domain.ErrNotFound):
			slog.Warn("archive read failed", "key", key, "error", err)
		}
	}

	doc, err := s.RenderProfile(ctx, p, style.Name)
	if err != nil {
		return RenderedDocument{}, err
	}

	if s.archive != nil {
		if err := s.archive.Put(ctx, key, doc.Body, doc.ContentType); err != nil {
			slog.Warn("archive write failed", "key", key, "error", err)
		}
	}
	return doc, nil
}

// RenderProfile renders p without touching the record store or archive.
func (s *RenderService) RenderProfile(ctx context.Context, p domain.Profile, template string) (RenderedDocument, error) {
	html, style, err := RenderHTML(p, template)
	if err != nil {
		return RenderedDocument{}, err
	}
	pdf, err := s.renderer.RenderHTMLToPDF(ctx, string(html))
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("render pdf: %w", err)
	}
	// validate basic PDF signature
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return RenderedDocument{}, fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
	}
	slog.Info("profile rendered", "id", p.ID.String(), "template", style.Name, "bytes", len(pdf))
	return document(p, style, pdf), nil
}

// RenderHTML lays out p with the named template.
func RenderHTML(p domain.Profile, template string) ([]byte, layout.Style, error) {
	style := layout.Lookup(template)
	html, err := layout.RenderHTML(model.BuildDocument(p), style)
	if err != nil {
		return nil, style, err
	}
	return html, style, nil
}

func document(p domain.Profile, style layout.Style, body []byte) RenderedDocument {
	return RenderedDocument{
		Filename:    layout.Filename(p.Name, style),
		ContentType: ContentTypePDF,
		Body:        body,
	}
}

func archiveKey(id uuid.UUID, style layout.Style) string {
	return fmt.Sprintf("renders/%s/%s.pdf", id, style.Name)
}
