package cookiewire

import (
	"net/http"
	"strings"
)

// ParseRequest decodes the Cookie header(s) of r. Clients normally send one
// Cookie line; if several arrive they are treated as one header joined with
// "; ", matching how net/http enumerates them.
func (c *Codec) ParseRequest(r *http.Request, mode Mode) (map[string]any, error) {
	lines := r.Header.Values("Cookie")
	switch len(lines) {
	case 0:
		return c.Parse("", mode)
	case 1:
		return c.Parse(lines[0], mode)
	}
	return c.Parse(strings.Join(lines, "; "), mode)
}

// SetCookie is the single-record form of SetCookies, writing straight to a
// response.
func SetCookie(w http.ResponseWriter, rec Record) {
	w.Header().Add("Set-Cookie", rec.String())
}
