package config

import "errors"

var (
	ErrNoConfigFile = errors.New("no config file specified")
)
