// SPDX-License-Identifier: MIT
// Package gf2: sentinel errors.
//
// Callers MUST branch with errors.Is; sentinels are never stringified with
// parameters at the definition site.

package gf2

import "errors"

// ErrDivisionByZero is returned by Div, Rem and Inv when the divisor is Zero.
// Zero is the only non-invertible element of GF(2).
var ErrDivisionByZero = errors.New("gf2: division by zero")
