package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MaxLenString validates that a string does not exceed max characters.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// ValidEmail validates that a string is a plausible RFC 5322 email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isValidEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// EmailList validates a comma-separated address list: it must split into at
// least one non-empty address, and every address must independently be valid.
func EmailList(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addrs := SplitAddressList(value)
			if len(addrs) == 0 {
				return false
			}
			for _, addr := range addrs {
				if !isValidEmail(addr) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "all email addresses must be valid",
		},
	}
}

// OptionalEmailList validates a comma-separated address list that may be
// blank. A blank value is valid and treated as absent; a non-blank value
// must satisfy the same per-address rule as EmailList.
func OptionalEmailList(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			for _, addr := range SplitAddressList(value) {
				if !isValidEmail(addr) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "all email addresses must be valid",
		},
	}
}

// SplitAddressList splits a comma-separated address string into trimmed,
// non-empty entries.
func SplitAddressList(value string) []string {
	var addrs []string
	for part := range strings.SplitSeq(value, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

// isValidEmail parses the address with net/mail and applies the extra
// checks typical web forms expect: a single non-empty local part and a
// dotted domain with no empty labels.
func isValidEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	email := addr.Address
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
