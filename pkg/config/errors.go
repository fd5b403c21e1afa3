package config

import "errors"

// ErrParsingConfig wraps failures to parse environment variables into a config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")
