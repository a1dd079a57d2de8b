package mock

import "github.com/fwojciec/markify"

var _ markify.Converter = (*Converter)(nil)

// Converter is a mock implementation of markify.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
