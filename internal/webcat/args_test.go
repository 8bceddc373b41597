// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package webcat_test

import (
	"github.com/ironcore-dev/webcat/internal/deliver"
	"github.com/ironcore-dev/webcat/internal/source"
	. "github.com/ironcore-dev/webcat/internal/webcat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveArgs", func() {
	DescribeTable("valid arguments",
		func(args []string, expectedSource source.Source, expectedTarget deliver.Target) {
			src, target, err := ResolveArgs(args)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(expectedSource))
			Expect(target).To(Equal(expectedTarget))
		},
		Entry("local path to stdout",
			[]string{"hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.Stdout(),
		),
		Entry("URL to stdout",
			[]string{"https://example.com/data"},
			source.Source{Kind: source.RemoteURL, Token: "https://example.com/data"},
			deliver.Stdout(),
		),
		Entry("URL to file",
			[]string{"--out", "result.txt", "https://example.com/data"},
			source.Source{Kind: source.RemoteURL, Token: "https://example.com/data"},
			deliver.File("result.txt"),
		),
		Entry("local path to file",
			[]string{"--out", "copy.txt", "hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.File("copy.txt"),
		),
		Entry("extra arguments are ignored",
			[]string{"hello.txt", "other.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.Stdout(),
		),
		Entry("--out after the input is not a flag",
			[]string{"hello.txt", "--out", "result.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.Stdout(),
		),
		Entry("--out value starting with dashes",
			[]string{"--out", "--weird", "hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.File("--weird"),
		),
		Entry("input starting with dashes",
			[]string{"--out", "result.txt", "--help"},
			source.Source{Kind: source.LocalPath, Token: "--help"},
			deliver.File("result.txt"),
		),
		Entry("other flags are inputs",
			[]string{"--help"},
			source.Source{Kind: source.LocalPath, Token: "--help"},
			deliver.Stdout(),
		),
		Entry("empty --out value means stdout",
			[]string{"--out", "", "hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "hello.txt"},
			deliver.Stdout(),
		),
		Entry("completion command names are inputs",
			[]string{"__complete", "hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "__complete"},
			deliver.Stdout(),
		),
		Entry("--out=value is an input",
			[]string{"--out=result.txt", "hello.txt"},
			source.Source{Kind: source.LocalPath, Token: "--out=result.txt"},
			deliver.Stdout(),
		),
	)

	DescribeTable("usage errors",
		func(args []string) {
			_, _, err := ResolveArgs(args)
			Expect(err).To(BeAssignableToTypeOf(&UsageError{}))
			Expect(err).To(MatchError(Usage))
		},
		Entry("no arguments", nil),
		Entry("empty arguments", []string{}),
		Entry("only --out", []string{"--out"}),
		Entry("--out without input", []string{"--out", "result.txt"}),
	)
})
