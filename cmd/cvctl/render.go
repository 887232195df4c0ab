package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		input      string
		template   string
		out        string
		htmlOnly   bool
		chromePath string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile JSON file to PDF",
		Args:  cobra.NoArgs,
		Example: `  cvctl render --input profile.json --template altacv
  cvctl render --input profile.json --html --out preview.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProfile(input)
			if err != nil {
				return err
			}
			if err := model.ValidateProfile(p); err != nil {
				return err
			}

			var body []byte
			name := out
			if htmlOnly {
				html, style, err := usecase.RenderHTML(p, template)
				if err != nil {
					return err
				}
				body = html
				if name == "" {
					name = fmt.Sprintf("CV_%s.html", style.Name)
				}
			} else {
				svc := usecase.NewRenderService(nil, infra.NewChromedpRenderer(chromePath), nil)
				doc, err := svc.RenderProfile(cmd.Context(), p, template)
				if err != nil {
					return err
				}
				body = doc.Body
				if name == "" {
					name = doc.Filename
				}
			}

			if dir := filepath.Dir(name); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(name, body, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "profile JSON file")
	cmd.Flags().StringVarP(&template, "template", "t", "", "template name (default professional)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default derived from name and template)")
	cmd.Flags().BoolVar(&htmlOnly, "html", false, "write the laid-out HTML instead of a PDF")
	cmd.Flags().StringVar(&chromePath, "chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readProfile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p domain.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}
