// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package deliver

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// Target is where content is delivered to. The zero value is standard output.
type Target struct {
	Path string
}

func Stdout() Target {
	return Target{}
}

func File(path string) Target {
	return Target{Path: path}
}

func (t Target) IsStdout() bool {
	return t.Path == ""
}

func (t Target) String() string {
	if t.IsStdout() {
		return "stdout"
	}
	return t.Path
}

// DeliveryError is returned when content could not be written to an output file.
type DeliveryError struct {
	Path string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Couldn't write %s:\n  %v", e.Path, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

type Options struct {
	Fs     afero.Fs
	Stdout io.Writer
	Log    logr.Logger
}

func setOptionsDefaults(o *Options) {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Log.GetSink() == nil {
		o.Log = logr.Discard()
	}
}

type Deliverer struct {
	fs     afero.Fs
	stdout io.Writer
	log    logr.Logger
}

func New(opts Options) *Deliverer {
	setOptionsDefaults(&opts)
	return &Deliverer{
		fs:     opts.Fs,
		stdout: opts.Stdout,
		log:    opts.Log,
	}
}

// Deliver writes content to target. Standard output gets a trailing newline,
// files get the content as is, replacing anything already there.
func (d *Deliverer) Deliver(content string, target Target) error {
	d.log.V(1).Info("Delivering content", "target", target.String(), "bytes", len(content))
	if target.IsStdout() {
		_, _ = io.WriteString(d.stdout, content+"\n")
		return nil
	}

	if err := afero.WriteFile(d.fs, target.Path, []byte(content), 0666); err != nil {
		return &DeliveryError{Path: target.Path, Err: err}
	}
	return nil
}
