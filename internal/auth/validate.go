package auth

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernameRE = regexp.MustCompile(`^[a-z0-9_]+$`)
	fullnameRE = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// Registration is the normalized input for creating an account.
type Registration struct {
	Fullname string
	Username string
	Email    string
	Password string
}

// FieldError describes one rejected registration field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Normalize trims every field and lower-cases username and email.
func (r Registration) Normalize() Registration {
	r.Fullname = strings.TrimSpace(r.Fullname)
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return r
}

// Validate returns one FieldError per invalid field; nil means valid.
// Call Normalize first.
func (r Registration) Validate() []FieldError {
	var errs []FieldError
	if n := utf8.RuneCountInString(r.Fullname); n < 2 || n > 20 || !fullnameRE.MatchString(r.Fullname) {
		errs = append(errs, FieldError{"fullname", "Fullname should only contain letters and spaces (2-20 characters)"})
	}
	if n := len(r.Username); n < 3 || n > 30 || !usernameRE.MatchString(r.Username) {
		errs = append(errs, FieldError{"username", "Username can only contain letters, numbers and underscores (3-30 characters)"})
	}
	if !validEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Email must be a valid address"})
	}
	if !StrongPassword(r.Password) {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters with one lowercase, one uppercase, one number and one special character"})
	}
	return errs
}

// StrongPassword reports whether p has at least 8 characters and contains a
// lowercase letter, an uppercase letter, a digit, and one of !@#$%^&*.
func StrongPassword(p string) bool {
	if utf8.RuneCountInString(p) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*", r):
			special = true
		}
	}
	return lower && upper && digit && special
}

func validEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}
