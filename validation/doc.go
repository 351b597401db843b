// Package validation checks configuration and options before they reach the
// rest of larc.
//
// Struct tags are checked with the validator library:
//
//	type IPConfig struct {
//	    MaxExpand int `validate:"gte=1"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic checks collect every failure before reporting:
//
//	v := validation.New()
//	v.Custom(comma != '"', "comma", "must not be a quote")
//	err := v.Err()
//
// Both forms return an *errors.AppError with code INVALID_INPUT and the
// failing fields under Details["fields"].
package validation
