package model

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"resume-builder/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema string

var schemaLoader = gojsonschema.NewStringLoader(profileSchema)

var ErrInvalidProfile = errors.New("invalid profile")

// ValidationError carries the per-field schema violations of a profile.
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidProfile }

// ValidateProfile checks a profile against the embedded profile schema.
func ValidateProfile(p domain.Profile) error {
	return validateMap(p.Fields())
}

// validateMap validates a generic map against the profile schema.
func validateMap(m map[string]interface{}) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(m))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	fields := domain.FieldErrors{}
	for _, e := range res.Errors() {
		field := e.Field()
		if field == "(root)" {
			if p, ok := e.Details()["property"].(string); ok {
				field = p
			}
		}
		fields.Add(field, e.Description())
	}
	return &ValidationError{Fields: fields}
}
