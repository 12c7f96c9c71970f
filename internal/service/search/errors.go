package search

import "errors"

var ErrOfferingNotFound = errors.New("offering not found")
