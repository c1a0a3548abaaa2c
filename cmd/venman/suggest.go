package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/venman-dev/venman/internal/service"
)

const maxSuggestions = 3

// withSuggestions appends close matches from names to a not-found error.
func withSuggestions(err error, name string, names []string) error {
	if !service.IsNotFound(err) || name == "" || len(names) == 0 {
		return err
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return err
	}

	var b strings.Builder
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		b.WriteString("\n  ")
		b.WriteString(m.Str)
	}
	return fmt.Errorf("%w\n\nDid you mean?%s", err, b.String())
}
