// Package validator provides a small rule-based validation engine.
//
// Rules are pure checks paired with a field-level error. Apply runs every
// rule and returns the full list of violations as ValidationErrors, which
// callers can group per field with ByField for API responses.
//
//	err := validator.Apply(
//		validator.EmailList("to", input.To),
//		validator.RequiredString("subject", input.Subject),
//		validator.MaxLenString("subject", input.Subject, 200),
//		validator.RequiredString("body", input.Body),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.ByField() → map[field][]message
//	}
package validator
