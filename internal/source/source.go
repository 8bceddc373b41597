// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package source

import "strings"

// Kind is the kind of location an input token points at.
type Kind int

const (
	LocalPath Kind = iota
	RemoteURL
)

func (k Kind) String() string {
	switch k {
	case LocalPath:
		return "local path"
	case RemoteURL:
		return "remote URL"
	default:
		return "unknown"
	}
}

// Source is a classified input token.
type Source struct {
	Kind  Kind
	Token string
}

// Verb is the action used when describing a failure to retrieve the source.
func (s Source) Verb() string {
	if s.Kind == RemoteURL {
		return "fetching"
	}
	return "reading"
}

var urlPrefixes = []string{"http://", "https://"}

// Classify returns a RemoteURL source if token starts with http:// or https://
// and a LocalPath source otherwise. The prefix match is case-sensitive.
func Classify(token string) Source {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(token, prefix) {
			return Source{Kind: RemoteURL, Token: token}
		}
	}
	return Source{Kind: LocalPath, Token: token}
}
