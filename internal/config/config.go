// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"evosim/internal/cli"
)

// Scenario is the YAML schema for a saved simulation setup. Pointer fields
// distinguish "absent" from zero so flags keep their defaults when the
// file stays silent.
type Scenario struct {
	Length     *int     `yaml:"length"`
	Time       *float64 `yaml:"time"`
	Rate       *float64 `yaml:"rate"`
	IndelRate  *float64 `yaml:"indel_rate"`
	Indels     *bool    `yaml:"indels"`
	Ancestor   *string  `yaml:"ancestor"`
	Replicates *int     `yaml:"replicates"`
	Seed       *int64   `yaml:"seed"`

	Align    *bool    `yaml:"align"`
	Match    *float64 `yaml:"match"`
	Mismatch *float64 `yaml:"mismatch"`
	Gap      *float64 `yaml:"gap"`
}

// Load parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Apply copies scenario values into o wherever the matching flag was not
// given explicitly. Flags always win.
func Apply(o *cli.Options, s *Scenario) {
	if s == nil {
		return
	}
	set := func(name string) bool { return o.Set[name] }

	if s.Length != nil && !set("length") {
		o.Length = *s.Length
	}
	if s.Time != nil && !set("time") {
		o.Time = *s.Time
	}
	if s.Rate != nil && !set("rate") {
		o.Rate = *s.Rate
	}
	if s.IndelRate != nil && !set("indel-rate") {
		o.IndelRate = *s.IndelRate
	}
	if s.Indels != nil && !set("indels") {
		o.Indels = *s.Indels
	}
	if s.Ancestor != nil && !set("ancestor") {
		o.Ancestor = *s.Ancestor
	}
	if s.Replicates != nil && !set("replicates") {
		o.Replicates = *s.Replicates
	}
	if s.Seed != nil && !set("seed") {
		o.Seed = *s.Seed
	}
	if s.Align != nil && !set("align") {
		o.Align = *s.Align
	}
	if s.Match != nil && !set("match") {
		o.Match = *s.Match
	}
	if s.Mismatch != nil && !set("mismatch") {
		o.Mismatch = *s.Mismatch
	}
	if s.Gap != nil && !set("gap") {
		o.GapPenalty = *s.Gap
	}
}
