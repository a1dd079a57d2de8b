package markify

import (
	"net/url"
	"strings"
)

// Anchor holds the attributes of an anchor element that affect rendering.
type Anchor struct {
	Href  string
	Title string

	// Text is the rendered text without escaping, used to detect autolinks.
	// When empty, the rendered text with escaped underscores restored is
	// used instead.
	Text string

	// Preformatted is set when the anchor sits inside a <pre> element.
	Preformatted bool
}

// RenderLink renders an anchor with already rendered child text.
//
// Links without text render to nothing and links inside preformatted blocks
// render as their bare text. Hrefs with a scheme other than http, https or
// file, and hrefs that cannot be parsed, drop the link syntax and keep the
// text. An anchor without an href renders as its trimmed text. Autolinks
// keep the whitespace surrounding the text, like the full link form.
func RenderLink(text string, a Anchor, opts Options) string {
	prefix, core, suffix := Chomp(text)
	if core == "" {
		return ""
	}
	if a.Preformatted {
		return core
	}

	href, title := a.Href, a.Title
	if href != "" {
		normalized, ok := NormalizeHref(href)
		if !ok {
			return prefix + core + suffix
		}
		href = normalized
	}

	visible := a.Text
	if visible == "" {
		visible = strings.ReplaceAll(core, `\_`, "_")
	}
	if opts.Autolinks && visible == href && title == "" && !opts.DefaultTitle {
		return prefix + "<" + href + ">" + suffix
	}
	if opts.DefaultTitle && title == "" {
		title = href
	}
	if href == "" {
		return core
	}
	return prefix + "[" + core + "](" + href + titleSuffix(title) + ")" + suffix
}

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
}

// NormalizeHref parses href and rewrites its path percent-decoded and then
// percent-encoded again. It returns false when href cannot be parsed or
// declares a scheme other than http, https or file.
func NormalizeHref(href string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	// url.Parse has already decoded Path; RawPath carries the re-encoded form.
	u.RawPath = escapePath(u.Path)
	return u.String(), true
}

// escapePath percent-encodes every byte of p except unreserved characters
// and '/'.
func escapePath(p string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// titleSuffix renders a quoted link or image title, or "" without a title.
func titleSuffix(title string) string {
	if title == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}
