// Package yaml loads markify.Options from YAML configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/markify"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads the YAML file at path and applies it on top of base.
// Keys missing from the file keep their value from base. Environment
// variables in the file are expanded before parsing.
func LoadOptions(path string, base markify.Options) (markify.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, markify.Errorf(markify.ENOTFOUND, "config file not found: %s", path)
		}
		return base, err
	}
	return ParseOptions(data, base)
}

// ParseOptions decodes YAML data on top of base. Unknown keys are rejected.
func ParseOptions(data []byte, base markify.Options) (markify.Options, error) {
	opts := base
	opts.KeepInlineImagesIn = append([]string(nil), base.KeepInlineImagesIn...)

	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return base, markify.Errorf(markify.EINVALID, "invalid config: %v", err)
	}

	if err := opts.Validate(); err != nil {
		return base, err
	}
	return opts, nil
}
