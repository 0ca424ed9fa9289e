// Package config loads the scoring and resource parameters of trialign from
// YAML and validates them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trialign/align"
)

// ErrInvalid wraps every validation failure returned by Validate and Load.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk parameter set. Substitution is indexed by bases in
// A, G, C, T order, like align.SubstitutionTable.
type Config struct {
	GapPenalty   int       `yaml:"gap_penalty"  validate:"gte=0"`
	Substitution [][][]int `yaml:"substitution" validate:"len=4,dive,len=4,dive,len=4,dive,gte=0"`
	Workers      int       `yaml:"workers"      validate:"gte=0"`
	MaxCells     int       `yaml:"max_cells"    validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in parameters: gap penalty 4, align.DefaultTable,
// serial fill and the default lattice limit.
func Default() *Config {
	return &Config{
		GapPenalty:   align.DefaultGapPenalty,
		Substitution: FromTable(align.DefaultTable()),
		Workers:      align.DefaultWorkers,
		MaxCells:     align.DefaultMaxCells,
	}
}

// Load reads path, overlays it on Default and validates the result.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct tags: a 4×4×4 table and non-negative values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Table converts Substitution into an align.SubstitutionTable.
// The config must have passed Validate.
func (c *Config) Table() align.SubstitutionTable {
	var t align.SubstitutionTable
	for x := range t {
		for y := range t[x] {
			copy(t[x][y][:], c.Substitution[x][y])
		}
	}

	return t
}

// ScoringOptions returns the align options described by c.
func (c *Config) ScoringOptions() []align.Option {
	opts := []align.Option{
		align.WithTable(c.Table()),
		align.WithGapPenalty(c.GapPenalty),
		align.WithMaxCells(c.MaxCells),
	}
	if c.Workers != align.DefaultWorkers {
		opts = append(opts, align.WithWorkers(c.Workers))
	}

	return opts
}

// FromTable converts t into the nested-list form used by Config.
func FromTable(t align.SubstitutionTable) [][][]int {
	out := make([][][]int, align.NumBases)
	for x := range t {
		out[x] = make([][]int, align.NumBases)
		for y := range t[x] {
			out[x][y] = append([]int(nil), t[x][y][:]...)
		}
	}

	return out
}
