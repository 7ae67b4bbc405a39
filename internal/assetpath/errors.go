// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assetpath

import "errors"

// Sentinel errors for asset path resolution.
var (
	// ErrInvalidReference indicates an asset reference that does not start
	// with exactly one leading "/".
	ErrInvalidReference = errors.New("invalid asset reference")

	// ErrUnknownEnvironment indicates an environment name that is neither
	// development nor production.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrInvalidPrefix indicates an asset prefix that is not an absolute
	// http(s) URL.
	ErrInvalidPrefix = errors.New("invalid asset prefix")
)
