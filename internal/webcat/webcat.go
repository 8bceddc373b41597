// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package webcat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/webcat/internal/deliver"
	"github.com/ironcore-dev/webcat/internal/retrieve"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Options struct {
	// Fs is used for reading local inputs and writing output files.
	Fs     afero.Fs
	Client *http.Client
	Stdout io.Writer
	Stderr io.Writer
	Log    logr.Logger
}

func setOptionsDefaults(o *Options) {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Log.GetSink() == nil {
		o.Log = logr.Discard()
	}
}

// Run resolves args, retrieves the content of the input and delivers it.
func Run(ctx context.Context, args []string, opts Options) error {
	setOptionsDefaults(&opts)
	log := opts.Log

	src, target, err := ResolveArgs(args)
	if err != nil {
		return err
	}
	log.V(1).Info("Resolved arguments", "source", src.Token, "kind", src.Kind.String(), "target", target.String())

	retriever := retrieve.New(retrieve.Options{
		Fs:     opts.Fs,
		Client: opts.Client,
		Log:    log.WithName("retrieve"),
	})
	content, err := retriever.Retrieve(ctx, src)
	if err != nil {
		return err
	}

	deliverer := deliver.New(deliver.Options{
		Fs:     opts.Fs,
		Stdout: opts.Stdout,
		Log:    log.WithName("deliver"),
	})
	return deliverer.Deliver(content, target)
}

func NewCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webcat [--out output-file] <file-path-or-url>",
		Short: "Print the contents of a file or URL",
		Long: `webcat prints the contents of a local file or of an http:// or https:// URL.

With --out as the first argument, the contents are written to the given file
instead of standard output, replacing the file if it already exists.`,
		Args: cobra.ArbitraryArgs,
		// Arguments are resolved by ResolveArgs so --out is only honored up front.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := opts
			o.Stdout = cmd.OutOrStdout()
			o.Stderr = cmd.ErrOrStderr()
			return Run(cmd.Context(), args, o)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	return cmd
}

// Main runs webcat with the given arguments (without the program name),
// reports any error on stderr and returns the process exit code.
func Main(ctx context.Context, args []string, opts Options) int {
	setOptionsDefaults(&opts)
	// RunE is called directly: cobra's Execute would claim tokens such as
	// __complete for its hidden completion command.
	cmd := NewCommand(opts)
	cmd.SetContext(ctx)
	if err := cmd.RunE(cmd, args); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}
