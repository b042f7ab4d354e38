package handlers

import "net/mail"

// FieldError points at a single invalid request field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// FieldRule is a declarative validation check for one request field.
type FieldRule struct {
	Path    string
	Message string
	Valid   func() bool
}

// runValidation evaluates the rules in order and collects one error per
// failing field.
func runValidation(rules []FieldRule) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		if !rule.Valid() {
			errs = append(errs, FieldError{Path: rule.Path, Message: rule.Message})
		}
	}
	return errs
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
