package cli

import "errors"

var (
	ErrorBackendUnavailable = errors.New("backend_unavailable")
	ErrorInvalidInput       = errors.New("invalid_input")
	ErrorNotAuthenticated   = errors.New("not_authenticated")
)
