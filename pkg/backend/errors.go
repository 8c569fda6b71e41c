package backend

import "errors"

var (
	ErrorInvalidCredentials = errors.New("invalid_credentials")
)
