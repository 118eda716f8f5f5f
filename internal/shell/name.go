package shell

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex matches a route name:
// - Starts with lowercase letter
// - Ends with lowercase letter or digit
// - Contains only lowercase letters, digits, and hyphens
var nameRegex = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

const maxNameLength = 63

// ValidateName checks that a route name is usable as a data attribute and a
// metric label value.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, maxNameLength)
	}
	if strings.Contains(name, "--") {
		return fmt.Errorf("%w: %q contains consecutive hyphens", ErrInvalidName, name)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q must be lowercase letters, digits and hyphens, starting with a letter", ErrInvalidName, name)
	}
	return nil
}

// Slugify derives a route name from a human title, e.g. "Items List" -> "items-list".
// It returns "" when nothing usable remains.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))

	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	slug = b.String()

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	// Names start with a letter.
	slug = strings.TrimLeft(slug, "-0123456789")

	if len(slug) > maxNameLength {
		slug = slug[:maxNameLength]
	}

	return strings.Trim(slug, "-")
}
