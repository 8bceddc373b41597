// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package webcat

import (
	"io"

	"github.com/ironcore-dev/webcat/internal/deliver"
	"github.com/ironcore-dev/webcat/internal/source"
	"github.com/spf13/pflag"
)

const (
	Usage = "Usage: webcat [--out output-file] <file-path-or-url>"

	OutFlag = "out"
)

// UsageError is returned when the arguments are missing or incomplete.
type UsageError struct{}

func (*UsageError) Error() string {
	return Usage
}

// newFlagSet holds the single --out flag and its help text.
func newFlagSet() (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet("webcat", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	out := fs.String(OutFlag, "", "write the content to this file instead of stdout")
	return fs, out
}

// ResolveArgs turns the argument list into the input source and the output target.
// --out is only recognized as the very first argument and always consumes the
// next argument as its value; the argument after that is the input.
func ResolveArgs(args []string) (source.Source, deliver.Target, error) {
	if len(args) == 0 {
		return source.Source{}, deliver.Target{}, &UsageError{}
	}

	if args[0] != "--"+OutFlag {
		return source.Classify(args[0]), deliver.Stdout(), nil
	}

	if len(args) < 3 {
		return source.Source{}, deliver.Target{}, &UsageError{}
	}

	// A defined string flag always consumes the following token, so parsing
	// "--out <value>" cannot fail.
	fs, out := newFlagSet()
	_ = fs.Parse(args[:2])
	return source.Classify(args[2]), deliver.File(*out), nil
}
