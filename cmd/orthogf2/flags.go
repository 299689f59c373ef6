package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/holiman/uint256"
)

// newFlagSet creates a subcommand flag set with ContinueOnError behavior
// that writes usage to w.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// indexValue implements flag.Value for decimal 256-bit group indices.
// The flag package has no big-integer support.
type indexValue struct {
	v   *uint256.Int
	set bool
}

func newIndexValue(def uint64) *indexValue {
	return &indexValue{v: uint256.NewInt(def)}
}

func (iv *indexValue) String() string {
	if iv == nil || iv.v == nil {
		return "0"
	}
	return iv.v.Dec()
}

func (iv *indexValue) Set(s string) error {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", s, err)
	}
	iv.v, iv.set = v, true
	return nil
}
