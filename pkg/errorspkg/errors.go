// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error.
//
// Repositories return it for any storage failure that has no domain meaning.
var ErrInternal = errors.New("internal")
