package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/markify"
	"github.com/fwojciec/markify/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page builds a document with site navigation and a footer around main.
func page(head, main string) string {
	return `<!DOCTYPE html>
<html>
<head>` + head + `</head>
<body>
<nav class="main-nav"><ul><li><a href="/">Home</a></li><li><a href="/about">About</a></li></ul></nav>
<article>` + main + `</article>
<footer><p>Copyright 2024 Example Corp</p><nav>Privacy | Terms | Contact</nav></footer>
</body>
</html>`
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "\n  "} {
			_, err := trafilatura.NewExtractor().Extract(input)

			require.Error(t, err)
			assert.Equal(t, markify.EINVALID, markify.ErrorCode(err))
		}
	})

	t.Run("reads a title from metadata", func(t *testing.T) {
		t.Parallel()

		head := `<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">`
		result, err := trafilatura.NewExtractor().Extract(page(head,
			`<h1>Getting Started</h1><p>This is the main content of the documentation page.</p>`))

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("drops navigation and footer", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(page("<title>Test</title>",
			`<h1>Article Title</h1><p>Article body with substantive content for readers.</p>`))

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive content")
		assert.NotContains(t, result.ContentHTML, "main-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("keeps code", func(t *testing.T) {
		t.Parallel()

		main := `<h1>Code Examples</h1>
<p>Convert a page and print the result to the terminal:</p>
<pre><code class="language-go">out, err := conv.Convert(page)
fmt.Println(out)
</code></pre>
<p>Inline code such as <code>markify convert</code> is kept as well.</p>`
		result, err := trafilatura.NewExtractor().Extract(page("<title>Code</title>", main))

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		assert.Contains(t, result.ContentHTML, "conv.Convert")
	})

	t.Run("keeps links", func(t *testing.T) {
		t.Parallel()

		main := `<h1>Further Reading</h1>
<p>The full reference for the configuration format lives in the <a href="https://example.com/reference">reference manual</a>, which covers every option in detail.</p>
<p>Each section of the manual includes examples that can be copied into a project directly.</p>`
		result, err := trafilatura.NewExtractor().Extract(page("<title>Links</title>", main))

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `href="https://example.com/reference"`)
	})

	t.Run("handles a bare body", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
