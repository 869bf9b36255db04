// SPDX-License-Identifier: MIT

package geomesh

import "errors"

// ErrInvalidIteration indicates a requested iteration count is negative or
// exceeds cell.MaxIterations, the compile-time subdivision-depth limit
// (§7's error table: "Requested iterations < 0 or exceeds compile limit").
// It is checked at the API boundary, before any allocation or subdivision
// work begins.
var ErrInvalidIteration = errors.New("geomesh: iteration count out of range")
