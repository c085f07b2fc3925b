package config

import (
	"fmt"
	"sort"
	"strings"
)

const (
	nameValueSeparator = "="
	valueSeparator     = ","
)

// Option identifies one key of the key=value argument surface.
type Option string

const (
	// OptSuffix filters the listing by file name suffix. Multi-valued.
	OptSuffix Option = "suffix"

	// OptRequiredFilesFile is the path of the expected-list file.
	OptRequiredFilesFile Option = "required-files-file"

	// OptCheckFolder is the directory whose files are checked.
	OptCheckFolder Option = "check-folder-for-files"

	// OptGenerate switches to generate mode when "true".
	OptGenerate Option = "generate-required-files-file"

	// OptOnErrorCreateFile is where the current listing is written on mismatch.
	OptOnErrorCreateFile Option = "on-error-create-file"
)

// optionSpec describes a known option and how it lands in a Config.
type optionSpec struct {
	required bool
	apply    func(c *Config, values []string)
}

// optionTable is the closed set of known options.
var optionTable = map[Option]optionSpec{
	OptSuffix: {
		apply: func(c *Config, values []string) {
			c.Suffixes = nonEmpty(values)
		},
	},
	OptRequiredFilesFile: {
		required: true,
		apply: func(c *Config, values []string) {
			c.ExpectedFile = values[0]
		},
	},
	OptCheckFolder: {
		required: true,
		apply: func(c *Config, values []string) {
			c.Dir = values[0]
		},
	},
	OptGenerate: {
		apply: func(c *Config, values []string) {
			c.Generate = strings.EqualFold(values[0], "true")
		},
	},
	OptOnErrorCreateFile: {
		apply: func(c *Config, values []string) {
			c.SnapshotFile = Optional[string]{Value: values[0], Set: true}
		},
	},
}

// optionOrder fixes the order in which options are reported and applied.
var optionOrder = []Option{
	OptSuffix,
	OptRequiredFilesFile,
	OptCheckFolder,
	OptGenerate,
	OptOnErrorCreateFile,
}

// Required reports whether the option must be supplied.
func (o Option) Required() bool {
	return optionTable[o].required
}

// Known reports whether o is one of the recognised options.
func (o Option) Known() bool {
	_, ok := optionTable[o]
	return ok
}

// RequiredOptions returns the options that must be supplied.
func RequiredOptions() []Option {
	var out []Option
	for _, opt := range optionOrder {
		if opt.Required() {
			out = append(out, opt)
		}
	}
	return out
}

// Parsed holds the recognised options taken from a token list.
type Parsed struct {
	values map[Option][]string
}

// Parse reads key=value[,value...] tokens. Tokens that do not split into
// exactly one name and one non-empty value, and tokens naming an unknown
// option, are skipped. When an option appears more than once the last
// occurrence wins.
func Parse(tokens []string) *Parsed {
	p := &Parsed{values: make(map[Option][]string)}

	for _, token := range tokens {
		parts := strings.Split(token, nameValueSeparator)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}

		opt := Option(parts[0])
		if !opt.Known() {
			continue
		}

		p.values[opt] = strings.Split(parts[1], valueSeparator)
	}

	return p
}

// Values returns the values given for opt and whether it was present.
func (p *Parsed) Values(opt Option) ([]string, bool) {
	values, ok := p.values[opt]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Len returns the number of distinct options present.
func (p *Parsed) Len() int {
	return len(p.values)
}

// MissingRequired returns the required options that were not supplied.
func (p *Parsed) MissingRequired() []Option {
	var missing []Option
	for _, opt := range RequiredOptions() {
		if _, ok := p.values[opt]; !ok {
			missing = append(missing, opt)
		}
	}
	return missing
}

// HasMissingRequired reports whether any required option is absent.
func (p *Parsed) HasMissingRequired() bool {
	return len(p.MissingRequired()) > 0
}

// Set overrides the values of opt. It is used by commands that force an
// option, such as the generate subcommand.
func (p *Parsed) Set(opt Option, values ...string) error {
	if !opt.Known() {
		return fmt.Errorf("unknown option: %s", opt)
	}
	if len(values) == 0 {
		return fmt.Errorf("option %s needs at least one value", opt)
	}
	p.values[opt] = append([]string(nil), values...)
	return nil
}

// Resolve turns the parsed options into a Config. It fails with a
// *MissingOptionsError when a required option is absent.
func (p *Parsed) Resolve() (Config, error) {
	if missing := p.MissingRequired(); len(missing) > 0 {
		return Config{}, &MissingOptionsError{Missing: missing}
	}

	var cfg Config
	for _, opt := range optionOrder {
		values, ok := p.values[opt]
		if !ok {
			continue
		}
		optionTable[opt].apply(&cfg, values)
	}

	return cfg, nil
}

// String lists the parsed options as key=value tokens in a stable order.
func (p *Parsed) String() string {
	keys := make([]string, 0, len(p.values))
	for opt, values := range p.values {
		keys = append(keys, string(opt)+nameValueSeparator+strings.Join(values, valueSeparator))
	}
	sort.Strings(keys)
	return strings.Join(keys, " ")
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
