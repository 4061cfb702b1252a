package errdefs

import "errors"

var ErrMissingFromPayload = errors.New("missing from payload")
var ErrFailedToParse = errors.New("failed to parse")
var ErrConfigNotProvided = errors.New("no config file provided")
var ErrUnexpectedStatus = errors.New("unexpected status code")
var ErrUnknownRoute = errors.New("unknown route")
var ErrInvalidTransition = errors.New("invalid transition")

/*------------*/

// ErrFetchFailed covers every way the robots fetch can go wrong: transport,
// status code and decoding are reported as the same kind.
type ErrFetchFailed struct{ error }

func (e ErrFetchFailed) Cause() error {
	return e.error
}

func (e ErrFetchFailed) Unwrap() error {
	return e.error
}

func FetchFailed(err error) error {
	if err == nil || IsFetchFailed(err) {
		return err
	}
	return ErrFetchFailed{err}
}
