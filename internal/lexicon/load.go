package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads extra entries from YAML of the form
//
//	productType:
//	  - pattern: سيرم
//	    tag: serum
//
// and returns base extended with them.
func Decode(base *Lexicon, r io.Reader) (*Lexicon, error) {
	var extra map[Category][]Entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&extra); err != nil {
		if err == io.EOF {
			return base, nil
		}
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return base.Extend(extra)
}

// LoadFile returns the built-in lexicon extended with the entries in path.
// An empty path yields the built-in lexicon.
func LoadFile(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon file: %w", err)
	}
	defer f.Close()

	l, err := Decode(Default(), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
