package locale

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileLocale is the on-disk YAML shape.  Fields that are absent keep the
// value of the base locale named by Tag (or en-US when Tag is empty).
type fileLocale struct {
	Tag    string `yaml:"tag"`
	Locale `yaml:",inline"`
}

// Load decodes a YAML locale description from r.
//
//	tag: de-CH
//	thousands_separator: "'"
//	month_abbr: [Jan, Feb, Mär, Apr, Mai, Jun, Jul, Aug, Sep, Okt, Nov, Dez]
func Load(r io.Reader) (Locale, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: read: %w", err)
	}

	var head struct {
		Tag string `yaml:"tag"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Locale{}, fmt.Errorf("locale: decode: %w", err)
	}

	base := Default()
	if head.Tag != "" {
		base, err = Lookup(head.Tag)
		if err != nil {
			return Locale{}, err
		}
	}

	f := fileLocale{Locale: base}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Locale{}, fmt.Errorf("locale: decode: %w", err)
	}
	return f.Locale.Clone(), nil
}

// LoadFile reads a YAML locale description from the named file.
func LoadFile(name string) (Locale, error) {
	// #nosec G304 -- path is supplied by the operator
	f, err := os.Open(name)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: open %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}
