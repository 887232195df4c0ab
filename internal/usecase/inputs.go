package usecase

import (
	"strconv"
	"strings"
)

// Submitted field names.
const (
	FieldCurrentStep      = "current_step"
	FieldTemplate         = "template"
	FieldPreview          = "preview"
	FieldSubmit           = "submit"
	FieldNextStep         = "next_step"
	FieldPreviousStep     = "previous_step"
	FieldContinueEditing  = "continue_editing"
	FieldRestartTemplates = "restart_templates"
	FieldStartFresh       = "start_fresh"
	FieldProjectsCount    = "projects_count"
	FieldEducationCount   = "education_count"
)

// MaxEntries caps projects_count and education_count.
const MaxEntries = 50

// Inputs holds one submission's form fields. A present key counts as a set
// flag whatever its value; absent text fields read as "".
type Inputs map[string]string

func (in Inputs) Has(key string) bool {
	_, ok := in[key]
	return ok
}

func (in Inputs) Text(key string) string {
	return in[key]
}

// Int parses key as an integer, returning def when absent or malformed.
func (in Inputs) Int(key string, def int) int {
	v, ok := in[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Count reads an entry count. Absent, malformed or non-positive values
// read as 1; values above MaxEntries are capped.
func (in Inputs) Count(key string) int {
	n := in.Int(key, 1)
	if n < 1 {
		return 1
	}
	if n > MaxEntries {
		return MaxEntries
	}
	return n
}

func indexed(prefix string, i int) string {
	return prefix + "_" + strconv.Itoa(i)
}
