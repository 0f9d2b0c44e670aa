// Package commitmsg validates commit messages against the Angular-style
// convention used by this repository: "type: Message starting with a capital
// letter".
package commitmsg

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	ErrEmpty            = errors.New("commit message is empty")
	ErrMalformed        = errors.New("commit message does not match 'type: Message' format")
	ErrUnknownType      = errors.New("invalid commit type")
	ErrLowercaseSubject = errors.New("commit message must start with a capital letter")
)

var validTypes = map[string]struct{}{
	"feat":     {},
	"fix":      {},
	"docs":     {},
	"style":    {},
	"refactor": {},
	"test":     {},
	"chore":    {},
	"perf":     {},
	"ci":       {},
	"build":    {},
	"revert":   {},
}

var messagePattern = regexp.MustCompile(`^([a-z]+):\s+(.+)$`)

// Validate checks a single-line commit message. The message is trimmed
// before validation; each failure mode maps to its own sentinel error.
func Validate(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmpty
	}

	match := messagePattern.FindStringSubmatch(message)
	if match == nil {
		return ErrMalformed
	}

	commitType, subject := match[1], match[2]
	if _, ok := validTypes[commitType]; !ok {
		return fmt.Errorf("%w '%s' (valid types: %s)", ErrUnknownType, commitType, strings.Join(Types(), ", "))
	}
	if !unicode.IsUpper([]rune(subject)[0]) {
		return ErrLowercaseSubject
	}
	return nil
}

// Types returns the valid commit types, sorted.
func Types() []string {
	types := make([]string, 0, len(validTypes))
	for t := range validTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
