package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct validation on a request DTO.
func Validate(s any) error {
	return validate.Struct(s)
}

// ValidatorMessages turns validator.ValidationErrors into the field → messages
// map that JsonValidationError renders. Unknown errors map to a generic entry.
func ValidatorMessages(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := snakeCase(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required."
		case "email":
			msg = "must be a valid email address."
		case "min":
			msg = "must be at least " + fe.Param() + " characters."
		case "max":
			msg = "must be at most " + fe.Param() + " characters."
		case "oneof":
			msg = "must be one of: " + fe.Param() + "."
		case "gte":
			msg = "must be greater than or equal to " + fe.Param() + "."
		case "datetime":
			msg = "must be a date in YYYY-MM-DD format."
		case "uuid":
			msg = "must be a valid id."
		default:
			msg = "is invalid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// FieldError builds a single-field error map for manual checks
// (date ordering, target XOR and the like).
func FieldError(field, msg string) map[string][]string {
	return map[string][]string{field: {msg}}
}

// snakeCase lowers a Go field name, keeping acronym runs as one word so
// TourLocationID becomes tour_location_id and UserDOB becomes user_dob.
func snakeCase(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if r < 'A' || r > 'Z' {
			b.WriteRune(r)
			continue
		}
		prevLower := i > 0 && rs[i-1] >= 'a' && rs[i-1] <= 'z'
		nextLower := i+1 < len(rs) && rs[i+1] >= 'a' && rs[i+1] <= 'z'
		if i > 0 && (prevLower || nextLower) {
			b.WriteByte('_')
		}
		b.WriteRune(r + ('a' - 'A'))
	}
	return b.String()
}
