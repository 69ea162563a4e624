package validator

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/stylesam/luxuria/internal/domain"
)

// ValidationErrors collects every violation found in a payload, keyed by
// field. Validation runs once at the boundary, before any business logic.
type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var loginRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

func ValidateCreateUser(login, password, name, phone, email string, socials []domain.Social) ValidationErrors {
	errs := make(ValidationErrors)

	// Login
	login = strings.TrimSpace(login)
	if login == "" {
		errs.Add("login", "Login is required")
	} else if len(login) < 3 {
		errs.Add("login", "Login must be at least 3 characters")
	} else if len(login) > 50 {
		errs.Add("login", "Login is too long")
	} else if !loginRegex.MatchString(login) {
		errs.Add("login", "Login can only contain letters, numbers, _ and -")
	}

	// Password
	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	}

	// Name
	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Name is too long")
	}

	// Phone
	validatePhone(phone, errs)

	// Email is optional
	if email != "" {
		validateEmail(email, errs)
	}

	validateSocials(socials, errs)

	return errs
}

// ValidateUpdateUser checks only the fields present in the patch; nil means
// the field is untouched.
func ValidateUpdateUser(name, email, phone *string, socials []domain.Social) ValidationErrors {
	errs := make(ValidationErrors)

	if name != nil && strings.TrimSpace(*name) == "" {
		errs.Add("name", "Name can not be empty")
	}
	if email != nil && *email != "" {
		validateEmail(*email, errs)
	}
	if phone != nil {
		validatePhone(*phone, errs)
	}
	validateSocials(socials, errs)

	return errs
}

func ValidateLogin(login, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(login) == "" {
		errs.Add("login", "Login is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateZone(name string, payload json.RawMessage) ValidationErrors {
	errs := make(ValidationErrors)

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Zone name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Zone name is too long")
	}

	// The geometry payload is opaque; it only has to be present and be
	// valid JSON.
	if len(payload) == 0 || string(payload) == "null" {
		errs.Add("payload", "Zone payload is required")
	} else if !json.Valid(payload) {
		errs.Add("payload", "Zone payload must be valid JSON")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validatePhone(phone string, errs ValidationErrors) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		errs.Add("phone", "Phone is required")
	} else if !phoneRegex.MatchString(phone) {
		errs.Add("phone", "Invalid phone number")
	}
}

func validateSocials(socials []domain.Social, errs ValidationErrors) {
	for i, s := range socials {
		if strings.TrimSpace(s.Name) == "" {
			errs.Add(fmt.Sprintf("socials[%d].name", i), "Social name is required")
		}
		u, err := url.ParseRequestURI(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs.Add(fmt.Sprintf("socials[%d].url", i), "Social URL must be a valid http(s) link")
		}
	}
}
