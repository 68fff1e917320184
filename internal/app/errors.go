package app

import "errors"

// LoadFailureMessage is shown in every display slot when loading fails.
const LoadFailureMessage = "Failed to load repositories. Please try again later."

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// LoadFailureError is returned when repositories couldn't be fetched:
// transport failure, non-success http status or malformed response.
type LoadFailureError string

// Error implements error interface
func (e LoadFailureError) Error() string {
	return string(e)
}

// IsLoadFailure tells that this error is 'load failure'.
// Returns always true.
func (LoadFailureError) IsLoadFailure() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// IsLoadFailureError checks if given error is caused by failed repositories load
func IsLoadFailureError(err error) bool {
	type loadFailureErr interface {
		IsLoadFailure() bool
	}

	var lfe loadFailureErr
	if errors.As(err, &lfe) {
		return lfe.IsLoadFailure()
	}

	return false
}
