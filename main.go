// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/ironcore-dev/webcat/internal/webcat"
	"github.com/spf13/afero"
)

func main() {
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{})

	os.Exit(webcat.Main(context.Background(), os.Args[1:], webcat.Options{
		Fs:     afero.NewOsFs(),
		Client: &http.Client{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log.WithName("webcat"),
	}))
}
