package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateSource indicates that a rate source failed for a reason other than
// the absence of a rate (unreadable file, unparsable override).
var ErrRateSource = errors.New("rate source failure")
