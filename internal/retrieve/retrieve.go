// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package retrieve

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/webcat/internal/source"
	"github.com/spf13/afero"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RetrievalError is returned when the content of a source could not be obtained.
type RetrievalError struct {
	Source source.Source
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("Error %s %s:\n  %v", e.Source.Verb(), e.Source.Token, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// StatusError is the cause of a RetrievalError for responses outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

type Options struct {
	Fs     afero.Fs
	Client *http.Client
	Log    logr.Logger
}

func setOptionsDefaults(o *Options) {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Client == nil {
		o.Client = &http.Client{}
	}
	if o.Log.GetSink() == nil {
		o.Log = logr.Discard()
	}
}

// Retriever reads the full content of local files and remote URLs.
type Retriever struct {
	fs     afero.Fs
	client *http.Client
	log    logr.Logger
}

func New(opts Options) *Retriever {
	setOptionsDefaults(&opts)
	return &Retriever{
		fs:     opts.Fs,
		client: opts.Client,
		log:    opts.Log,
	}
}

// Retrieve returns the content of src, dispatching on its kind.
func (r *Retriever) Retrieve(ctx context.Context, src source.Source) (string, error) {
	r.log.V(1).Info("Retrieving content", "kind", src.Kind.String(), "source", src.Token)
	switch src.Kind {
	case source.RemoteURL:
		return r.Remote(ctx, src.Token)
	default:
		return r.Local(src.Token)
	}
}

// Local reads the whole file at path as UTF-8 text.
func (r *Retriever) Local(path string) (string, error) {
	content, err := r.readLocal(path)
	if err != nil {
		return "", &RetrievalError{Source: source.Source{Kind: source.LocalPath, Token: path}, Err: err}
	}
	return content, nil
}

func (r *Retriever) readLocal(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", err
	}
	r.log.V(1).Info("Read file", "path", path, "bytes", len(data))
	return decode(unicode.UTF8, data)
}

// Remote issues a single GET request to url and returns the response body as text.
func (r *Retriever) Remote(ctx context.Context, url string) (string, error) {
	content, err := r.fetch(ctx, url)
	if err != nil {
		return "", &RetrievalError{Source: source.Source{Kind: source.RemoteURL, Token: url}, Err: err}
	}
	return content, nil
}

func (r *Retriever) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	r.log.V(1).Info("Fetched URL", "url", url, "status", res.StatusCode, "bytes", len(data))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &StatusError{StatusCode: res.StatusCode}
	}

	return decode(r.bodyEncoding(res.Header.Get("Content-Type")), data)
}

// bodyEncoding returns the encoding declared by the charset parameter of
// contentType, or UTF-8 if there is none or it is unknown.
func (r *Retriever) bodyEncoding(contentType string) encoding.Encoding {
	if contentType == "" {
		return unicode.UTF8
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		r.log.V(1).Info("Ignoring unparsable content type", "contentType", contentType, "error", err.Error())
		return unicode.UTF8
	}
	label, ok := params["charset"]
	if !ok {
		return unicode.UTF8
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		r.log.V(1).Info("Unknown charset, assuming UTF-8", "charset", label)
		return unicode.UTF8
	}
	r.log.V(1).Info("Decoding body", "charset", name)
	return enc
}

func decode(enc encoding.Encoding, data []byte) (string, error) {
	res, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("error decoding text: %w", err)
	}
	return string(res), nil
}
