package settings

import "errors"

var ErrNotFound = errors.New("settings not found")
