// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"fmt"

	"cogentcore.org/collide/base/errors"
)

var (
	// ErrInvalidArgument is returned for a nil collider argument.
	ErrInvalidArgument = errors.New("collide: invalid argument")

	// ErrUnsupported is returned for shape pairs and ray tests that
	// have no implementation. It is never silently reported as a miss.
	ErrUnsupported = errors.New("collide: unsupported shape query")

	// ErrDegenerateRay is returned for a ray with a zero or non-finite direction.
	ErrDegenerateRay = errors.New("collide: degenerate ray direction")

	// ErrKindMismatch is returned when updating a collider into one of another kind.
	ErrKindMismatch = errors.New("collide: collider kind mismatch")
)

func unsupportedPair(a, b Kinds) error {
	return fmt.Errorf("%w: %v vs %v", ErrUnsupported, a, b)
}

func unsupportedRay(k Kinds) error {
	return fmt.Errorf("%w: ray vs %v", ErrUnsupported, k)
}
