package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateFlag is an optional YYYY-MM-DD flag value.
type dateFlag struct {
	t *time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string {
	if f.t == nil {
		return ""
	}
	return f.t.Format(dateLayout)
}

func (f *dateFlag) Set(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	f.t = &t
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// orDefault returns the flag value when set, else def.
func (f *dateFlag) orDefault(def *time.Time) *time.Time {
	if f.t != nil {
		return f.t
	}
	return def
}

type exportFormat string

const (
	formatTable exportFormat = "table"
	formatJSON  exportFormat = "json"
	formatYAML  exportFormat = "yaml"
)

// formatFlag restricts --format to a fixed set of values.
type formatFlag struct {
	value   exportFormat
	allowed []exportFormat
}

var _ pflag.Value = (*formatFlag)(nil)

func newFormatFlag(def exportFormat, allowed ...exportFormat) *formatFlag {
	return &formatFlag{value: def, allowed: allowed}
}

func (f *formatFlag) String() string { return string(f.value) }

func (f *formatFlag) Set(s string) error {
	for _, a := range f.allowed {
		if strings.EqualFold(s, string(a)) {
			f.value = a
			return nil
		}
	}
	names := make([]string, len(f.allowed))
	for i, a := range f.allowed {
		names[i] = string(a)
	}
	return fmt.Errorf("must be one of %s", strings.Join(names, ", "))
}

func (f *formatFlag) Type() string { return "format" }
