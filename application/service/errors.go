package service

import "errors"

// ErrNoStore indicates run history was requested without a configured store.
var ErrNoStore = errors.New("run history is not configured")
