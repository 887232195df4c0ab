package infrastructure

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageCount parses a PDF and returns its number of pages.
func PageCount(b []byte) (n int, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("parse pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}
