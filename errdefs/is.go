package errdefs

import "errors"

func IsFetchFailed(err error) bool {
	var fetchErr ErrFetchFailed
	return errors.As(err, &fetchErr)
}
