// Package cookie persists small JSON documents in HTTP cookies using the
// same encoding a browser produces with encodeURIComponent(JSON.stringify(v)).
package cookie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMaxSize is the per-cookie budget browsers reliably honour.
const DefaultMaxSize = 4096

var (
	// FarFuture is the expiry written on every persisted cookie.
	FarFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

	ErrTooLarge = errors.New("cookie value exceeds size limit")
	ErrNotFound = errors.New("cookie not found")
)

type Options struct {
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
	MaxSize  int
}

func (o Options) withDefaults() Options {
	if o.Path == "" {
		o.Path = "/"
	}
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// Escape mirrors encodeURIComponent closely enough that either side can
// decode the other's output.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func Unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

// Jar reads cookies from one request and writes them to its response.
// Values written during the request are visible to later reads.
type Jar struct {
	w       http.ResponseWriter
	r       *http.Request
	opts    Options
	pending map[string]*string
}

func NewJar(w http.ResponseWriter, r *http.Request, opts Options) *Jar {
	return &Jar{
		w:       w,
		r:       r,
		opts:    opts.withDefaults(),
		pending: make(map[string]*string),
	}
}

// Get returns the decoded value of the named cookie.
func (j *Jar) Get(name string) (string, bool) {
	if v, ok := j.pending[name]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := j.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}

	value, err := Unescape(c.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (j *Jar) Set(name, value string) error {
	encoded := Escape(value)
	if len(name)+1+len(encoded) > j.opts.MaxSize {
		return fmt.Errorf("%s: %w", name, ErrTooLarge)
	}

	j.write(&http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     j.opts.Path,
		Expires:  FarFuture,
		Secure:   j.opts.Secure,
		HttpOnly: j.opts.HTTPOnly,
		SameSite: j.opts.SameSite,
	})
	j.pending[name] = &value
	return nil
}

// Clear expires the named cookie.
func (j *Jar) Clear(name string) {
	j.write(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     j.opts.Path,
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
		Secure:   j.opts.Secure,
		HttpOnly: j.opts.HTTPOnly,
		SameSite: j.opts.SameSite,
	})
	j.pending[name] = nil
}

// GetJSON decodes the named cookie into v. It returns ErrNotFound when the
// cookie is absent and the json error when the stored value is malformed.
func (j *Jar) GetJSON(name string, v any) error {
	raw, ok := j.Get(name)
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal([]byte(raw), v)
}

func (j *Jar) SetJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return j.Set(name, string(data))
}

// write replaces any Set-Cookie header already queued for the same name so
// the response carries one instruction per cookie.
func (j *Jar) write(c *http.Cookie) {
	header := j.w.Header()
	prefix := c.Name + "="
	kept := header["Set-Cookie"][:0]
	for _, line := range header["Set-Cookie"] {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		header.Del("Set-Cookie")
	} else {
		header["Set-Cookie"] = kept
	}
	http.SetCookie(j.w, c)
}

type contextKey struct{}

func WithJar(ctx context.Context, jar *Jar) context.Context {
	return context.WithValue(ctx, contextKey{}, jar)
}

func FromContext(ctx context.Context) (*Jar, bool) {
	jar, ok := ctx.Value(contextKey{}).(*Jar)
	return jar, ok && jar != nil
}
