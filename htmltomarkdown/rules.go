package htmltomarkdown

import (
	"bytes"
	"slices"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/marker"
	"github.com/fwojciec/markify"
	"golang.org/x/net/html"
)

// inlineParents are the ancestors whose content is rendered inline.
var inlineParents = []string{"a", "h1", "h2", "h3", "h4", "h5", "h6", "td", "th"}

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// rules is a converter plugin that registers the heading, link and image
// renderers ahead of the commonmark ones.
type rules struct {
	opts   markify.Options
	images markify.ImageSaver
}

func (r *rules) Name() string {
	return "markify-rules"
}

func (r *rules) Init(conv *converter.Converter) error {
	for _, tag := range headingTags {
		conv.Register.RendererFor(tag, converter.TagTypeBlock, r.renderHeading, converter.PriorityEarly)
	}
	conv.Register.RendererFor("a", converter.TagTypeInline, r.renderLink, converter.PriorityEarly)
	conv.Register.RendererFor("img", converter.TagTypeInline, r.renderImage, converter.PriorityEarly)
	return nil
}

func (r *rules) renderHeading(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	level := int(n.Data[1] - '0')

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	if hasAncestor(n, inlineParents) {
		w.WriteString(markify.RenderHeading(level, buf.String(), true))
		return converter.RenderSuccess
	}

	// RenderHeading supplies the second newline of the blank line.
	w.WriteString("\n")
	w.WriteString(markify.RenderHeading(level, buf.String(), false))
	w.WriteString("\n\n")
	return converter.RenderSuccess
}

func (r *rules) renderLink(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	a := markify.Anchor{
		Href:         strings.TrimSpace(attr(n, "href")),
		Title:        attr(n, "title"),
		Text:         visibleText(buf.String()),
		Preformatted: hasAncestor(n, []string{"pre"}),
	}
	w.WriteString(markify.RenderLink(buf.String(), a, r.opts))
	return converter.RenderSuccess
}

func (r *rules) renderImage(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	img := markify.Image{
		Src:   strings.TrimSpace(attr(n, "src")),
		Alt:   attr(n, "alt"),
		Title: attr(n, "title"),
	}
	if n.Parent != nil && n.Parent.Type == html.ElementNode {
		img.Parent = n.Parent.Data
	}
	w.WriteString(markify.RenderImage(img, hasAncestor(n, inlineParents), r.opts, r.images))
	return converter.RenderSuccess
}

// attr returns the value of the attribute key, or "" if absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasAncestor reports whether any ancestor of n is an element named in tags.
func hasAncestor(n *html.Node, tags []string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && slices.Contains(tags, p.Data) {
			return true
		}
	}
	return false
}

// visibleText returns rendered Markdown without the engine's escaping
// markers, so "http://x" compares equal to its href while "**http://x**"
// does not.
func visibleText(rendered string) string {
	text := strings.ReplaceAll(rendered, string(marker.MarkerEscaping), "")
	return strings.TrimSpace(strings.ReplaceAll(text, `\_`, "_"))
}
