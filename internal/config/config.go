package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// Mode selects which batches run.
type Mode string

const (
	ModeSingle  Mode = "single"
	ModeMixture Mode = "mixture"
	ModeBoth    Mode = "both"
)

// Samplers accepted by -sampler.
const (
	SamplerGonum     = "gonum"
	SamplerBoxMuller = "boxmuller"
)

type Config struct {
	Mode     Mode   `yaml:"type"`
	Number   int    `yaml:"number"`
	Out      string `yaml:"out"`
	ZeroFill int    `yaml:"zerofill"`
	Format   string `yaml:"format"`
	Bins     int    `yaml:"bins"`

	Loc   float64 `yaml:"loc"`
	Scale float64 `yaml:"scale"`
	Size  int     `yaml:"size"`

	Loc1   float64 `yaml:"loc1"`
	Loc2   float64 `yaml:"loc2"`
	Scale1 float64 `yaml:"scale1"`
	Scale2 float64 `yaml:"scale2"`
	Size1  int     `yaml:"size1"`
	Size2  int     `yaml:"size2"`

	Sampler string `yaml:"sampler"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`

	File string `yaml:"-"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Mode:     ModeBoth,
		Number:   1,
		Out:      "var/data/out/is_normal_distribution",
		ZeroFill: 4,
		Format:   "png",
		Bins:     100,
		Loc:      50.0,
		Scale:    20.0,
		Size:     1000,
		Loc1:     25.0,
		Loc2:     75.0,
		Scale1:   20.0,
		Scale2:   20.0,
		Size1:    500,
		Size2:    500,
		Sampler:  SamplerGonum,
		Width:    640,
		Height:   480,
	}
}

func bind(fs *flag.FlagSet, cfg *Config) {
	mode := (*modeValue)(&cfg.Mode)
	fs.Var(mode, "type", "type of graph curves (1|single, 2|mixture, both)")
	fs.Var(mode, "t", "shorthand for -type")
	fs.IntVar(&cfg.Number, "number", cfg.Number, "number of output files per type")
	fs.IntVar(&cfg.Number, "n", cfg.Number, "shorthand for -number")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "path to output")
	fs.StringVar(&cfg.Out, "o", cfg.Out, "shorthand for -out")
	fs.IntVar(&cfg.ZeroFill, "zerofill", cfg.ZeroFill, "minimum digits of the file index")
	fs.IntVar(&cfg.ZeroFill, "z", cfg.ZeroFill, "shorthand for -zerofill")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "format of output images")
	fs.StringVar(&cfg.Format, "f", cfg.Format, "shorthand for -format")
	fs.IntVar(&cfg.Bins, "bins", cfg.Bins, "number of histogram bins")
	fs.IntVar(&cfg.Bins, "b", cfg.Bins, "shorthand for -bins")

	fs.Float64Var(&cfg.Loc, "loc", cfg.Loc, "mean of the single normal distribution")
	fs.Float64Var(&cfg.Loc, "l", cfg.Loc, "shorthand for -loc")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "standard deviation of the single normal distribution")
	fs.Float64Var(&cfg.Scale, "c", cfg.Scale, "shorthand for -scale")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "sample size of the single normal distribution")
	fs.IntVar(&cfg.Size, "s", cfg.Size, "shorthand for -size")

	fs.Float64Var(&cfg.Loc1, "loc1", cfg.Loc1, "mean of the first mixture component")
	fs.Float64Var(&cfg.Loc2, "loc2", cfg.Loc2, "mean of the second mixture component")
	fs.Float64Var(&cfg.Scale1, "scale1", cfg.Scale1, "standard deviation of the first mixture component")
	fs.Float64Var(&cfg.Scale2, "scale2", cfg.Scale2, "standard deviation of the second mixture component")
	fs.IntVar(&cfg.Size1, "size1", cfg.Size1, "sample size of the first mixture component")
	fs.IntVar(&cfg.Size2, "size2", cfg.Size2, "sample size of the second mixture component")

	fs.StringVar(&cfg.Sampler, "sampler", cfg.Sampler, "normal sampler (gonum, boxmuller)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.StringVar(&cfg.File, "config", cfg.File, "YAML file with option values")
}

// Parse reads options from args. Values in the -config file replace the
// defaults; flags given on the command line replace both.
func Parse(args []string) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("histgen", flag.ContinueOnError)
	bind(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.File != "" {
		fromFile, err := Load(cfg.File)
		if err != nil {
			return nil, err
		}
		fromFile.File = cfg.File

		override := flag.NewFlagSet("histgen", flag.ContinueOnError)
		override.SetOutput(io.Discard)
		bind(override, fromFile)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if err := override.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
				setErr = err
			}
		})
		if setErr != nil {
			return nil, setErr
		}
		cfg = fromFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Mode, _ = ParseMode(string(cfg.Mode))
	return cfg, nil
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	return cfg, nil
}

// Validate rejects values the generator cannot be started with. Bins and
// scales are left to the generator.
func (c *Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	switch {
	case c.Number < 0:
		return fmt.Errorf("%w: number must not be negative, got %d", ErrInvalid, c.Number)
	case c.ZeroFill < 0:
		return fmt.Errorf("%w: zerofill must not be negative, got %d", ErrInvalid, c.ZeroFill)
	case c.Size < 0 || c.Size1 < 0 || c.Size2 < 0:
		return fmt.Errorf("%w: sizes must not be negative", ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Sampler != SamplerGonum && c.Sampler != SamplerBoxMuller:
		return fmt.Errorf("%w: unknown sampler %q", ErrInvalid, c.Sampler)
	}
	return nil
}

// Single reports whether the single normal batch runs.
func (c *Config) Single() bool {
	m, _ := ParseMode(string(c.Mode))
	return m == ModeSingle || m == ModeBoth
}

// Mixture reports whether the mixture batch runs.
func (c *Config) Mixture() bool {
	m, _ := ParseMode(string(c.Mode))
	return m == ModeMixture || m == ModeBoth
}

// ParseMode accepts the mode names and their numeric aliases 1 and 2.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "1", string(ModeSingle):
		return ModeSingle, nil
	case "2", string(ModeMixture):
		return ModeMixture, nil
	case string(ModeBoth):
		return ModeBoth, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrInvalid, s)
}

type modeValue Mode

func (m *modeValue) String() string { return string(*m) }

func (m *modeValue) Set(s string) error {
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(mode)
	return nil
}
