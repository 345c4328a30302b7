package validators

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldValidator checks a single raw input and reports whether it is
// acceptable. On rejection the reason is non-empty and user-facing.
// Validators never panic on malformed input.
type FieldValidator func(raw string) (bool, string)

const (
	maxEmailLength     = 254 // RFC 5321 limit
	maxExperienceYears = 60
	minPhoneDigits     = 10
	maxPhoneDigits     = 15
	maxTechStackLength = 500
	maxFreeTextLength  = 100
	minFreeTextLength  = 2
)

var (
	namePattern      = regexp.MustCompile(`^[a-zA-Z\s\-'.]{2,50}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nonDigit         = regexp.MustCompile(`\D`)
	positionPattern  = regexp.MustCompile(`^[a-zA-Z0-9\s\-().\/+]+$`)
	locationPattern  = regexp.MustCompile(`^[a-zA-Z0-9\s,\-.]+$`)
	techStackPattern = regexp.MustCompile(`^[a-zA-Z0-9\s,\-.+#\/()]+$`)
)

// Name allows letters, spaces, hyphens, apostrophes and periods,
// 2-50 characters (covers names like O'Connor and Jean-Pierre).
func Name(raw string) (bool, string) {
	name := Sanitize(raw)
	if name == "" {
		return false, "Name cannot be empty."
	}
	if !namePattern.MatchString(name) {
		return false, "Name should contain only letters, spaces, hyphens, and apostrophes (2-50 characters)."
	}
	return true, ""
}

// Email applies an RFC-lite local@domain.tld pattern with a length cap.
func Email(raw string) (bool, string) {
	email := Sanitize(raw)
	if email == "" {
		return false, "Email cannot be empty."
	}
	if len(email) > maxEmailLength {
		return false, "Email address is too long."
	}
	if !emailPattern.MatchString(email) {
		return false, "Please enter a valid email address."
	}
	return true, ""
}

// Phone accepts any formatting as long as the digit count lands in the
// 10-15 range international numbers use.
func Phone(raw string) (bool, string) {
	phone := Sanitize(raw)
	if phone == "" {
		return false, "Phone number cannot be empty."
	}
	digits := nonDigit.ReplaceAllString(phone, "")
	if digits == "" {
		return false, "Phone number must contain digits."
	}
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return false, "Phone number should be between 10-15 digits."
	}
	return true, ""
}

// Experience accepts non-negative decimal years up to a realistic cap.
func Experience(raw string) (bool, string) {
	experience := Sanitize(raw)
	if experience == "" {
		return false, "Experience cannot be empty."
	}
	years, err := strconv.ParseFloat(experience, 64)
	if err != nil {
		return false, "Experience should be a number (e.g., 2, 3.5, 10)."
	}
	if years < 0 {
		return false, "Experience cannot be negative."
	}
	if years > maxExperienceYears {
		return false, "Experience seems too high. Please enter a realistic number."
	}
	return true, ""
}

// Position allows alphanumerics plus the punctuation common in job
// titles, 2-100 characters.
func Position(raw string) (bool, string) {
	position := Sanitize(raw)
	if position == "" {
		return false, "Position cannot be empty."
	}
	if len(position) < minFreeTextLength {
		return false, "Position must be at least 2 characters long."
	}
	if len(position) > maxFreeTextLength {
		return false, "Position must be less than 100 characters long."
	}
	if !positionPattern.MatchString(position) {
		return false, "Position contains invalid characters. Please use only letters, numbers, spaces, hyphens, parentheses, and common symbols."
	}
	return true, ""
}

// Location allows alphanumerics plus space, comma, hyphen and period.
func Location(raw string) (bool, string) {
	location := Sanitize(raw)
	if location == "" {
		return false, "Location cannot be empty."
	}
	if len(location) < minFreeTextLength {
		return false, "Location must be at least 2 characters long."
	}
	if len(location) > maxFreeTextLength {
		return false, "Location must be less than 100 characters long."
	}
	if !locationPattern.MatchString(location) {
		return false, "Location contains invalid characters."
	}
	return true, ""
}

// TechStack accepts a comma-separated list of technologies, allowing
// symbols that appear in technology names (C++, C#, CI/CD).
func TechStack(raw string) (bool, string) {
	techStack := Sanitize(raw)
	if techStack == "" {
		return false, "Tech stack cannot be empty."
	}
	if len(techStack) < minFreeTextLength {
		return false, "Tech stack must be at least 2 characters long."
	}
	if len(techStack) > maxTechStackLength {
		return false, "Tech stack description is too long (maximum 500 characters)."
	}
	if !techStackPattern.MatchString(techStack) {
		return false, "Tech stack contains invalid characters."
	}
	return true, ""
}

// ParseTechStack splits a validated tech-stack field into trimmed,
// non-empty entries. An input that yields no entries falls back to a
// single general entry so an interview can always proceed.
func ParseTechStack(techStack string) []string {
	var techs []string
	for _, part := range strings.Split(techStack, ",") {
		if t := strings.TrimSpace(part); t != "" {
			techs = append(techs, t)
		}
	}
	if len(techs) == 0 {
		return []string{"General Programming"}
	}
	return techs
}
