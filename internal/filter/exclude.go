// Package filter decides which directory entries a copy skips.
package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"fsops/internal/domain"
)

// ExcludeFilter excludes entries whose name matches any of a set of regex patterns.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		logger:   logger,
	}, nil
}

// New returns an exclude filter for patterns, or a no-op filter when
// there are none.
func New(patterns []string, logger *slog.Logger) (domain.EntryFilter, error) {
	if len(patterns) == 0 {
		return NewNoOpFilter(), nil
	}
	return NewExcludeFilter(patterns, logger)
}

// ShouldExclude returns true if the entry name matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(name string) bool {
	for _, pattern := range f.patterns {
		if pattern.MatchString(name) {
			if f.logger != nil {
				f.logger.Debug("Entry matches exclude pattern",
					"name", name,
					"pattern", pattern.String())
			}
			return true
		}
	}
	return false
}

// Patterns returns the source text of the compiled patterns.
func (f *ExcludeFilter) Patterns() []string {
	out := make([]string, 0, len(f.patterns))
	for _, p := range f.patterns {
		out = append(out, p.String())
	}
	return out
}

var _ domain.EntryFilter = (*ExcludeFilter)(nil)
