package cookiewire

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SameSite mirrors the Set-Cookie SameSite attribute. The zero value emits
// no attribute.
type SameSite int

const (
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

// Attributes are the Set-Cookie attributes attached to a Record. The zero
// value emits a bare name=value line.
type Attributes struct {
	Path   string
	Domain string

	// MaxAge follows net/http semantics: 0 emits nothing (session cookie),
	// >0 is seconds, <0 emits Max-Age=0 (delete now).
	MaxAge  int
	Expires time.Time

	Secure      bool
	HttpOnly    bool
	SameSite    SameSite
	Partitioned bool
}

// check enforces combinations browsers reject outright.
func (a Attributes) check(name string) error {
	if a.SameSite == SameSiteNone && !a.Secure {
		return &AttributeError{Name: name, Reason: "SameSite=None requires Secure"}
	}
	if strings.HasPrefix(name, "__Host-") {
		switch {
		case !a.Secure:
			return &AttributeError{Name: name, Reason: "__Host- prefix requires Secure"}
		case a.Domain != "":
			return &AttributeError{Name: name, Reason: "__Host- prefix forbids Domain"}
		case a.Path != "/":
			return &AttributeError{Name: name, Reason: `__Host- prefix requires Path="/"`}
		}
	} else if strings.HasPrefix(name, "__Secure-") && !a.Secure {
		return &AttributeError{Name: name, Reason: "__Secure- prefix requires Secure"}
	}
	return nil
}

// Record is the per-cookie output of Create: the percent-encoded wire value
// plus its attributes. Records are built per response and discarded once the
// header is emitted.
type Record struct {
	Name       string
	Value      string
	Attributes Attributes
}

// String renders the full Set-Cookie line. Attribute order follows net/http.
func (r Record) String() string {
	var b strings.Builder
	b.Grow(len(r.Name) + 1 + len(r.Value))
	b.WriteString(r.Name)
	b.WriteByte('=')
	b.WriteString(r.Value)

	a := r.Attributes
	if a.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(a.Path)
	}
	if a.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(a.Domain)
	}
	if !a.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(a.Expires.UTC().Format(http.TimeFormat))
	}
	if a.MaxAge > 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(a.MaxAge))
	} else if a.MaxAge < 0 {
		b.WriteString("; Max-Age=0")
	}
	if a.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if a.Secure {
		b.WriteString("; Secure")
	}
	switch a.SameSite {
	case SameSiteLax:
		b.WriteString("; SameSite=Lax")
	case SameSiteStrict:
		b.WriteString("; SameSite=Strict")
	case SameSiteNone:
		b.WriteString("; SameSite=None")
	}
	if a.Partitioned {
		b.WriteString("; Partitioned")
	}
	return b.String()
}

// HeaderAdder appends one header line per call. http.Header satisfies it;
// for a live response pass w.Header().
type HeaderAdder interface {
	Add(key, value string)
}

var _ HeaderAdder = http.Header{}

// SetCookies emits one Set-Cookie line per record, in call order. Lines are
// never comma-joined: clients enumerating Set-Cookie rely on one line per
// cookie, and ordering occasionally matters to them.
func SetCookies(h HeaderAdder, recs ...Record) {
	for _, r := range recs {
		h.Add("Set-Cookie", r.String())
	}
}
