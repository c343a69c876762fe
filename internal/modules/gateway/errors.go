package gateway

import "errors"

var ErrBookNotFound = errors.New("book not found")
