package config

import "errors"

// ErrInvalidConfiguration is matched by every parse and validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")
