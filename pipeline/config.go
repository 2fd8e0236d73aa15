package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SampleCounts sets the number of rows generated per table.
type SampleCounts struct {
	OreFeed    int `yaml:"ore_feed"`
	Crushing   int `yaml:"crushing"`
	Separation int `yaml:"separation"`
	Equipment  int `yaml:"equipment"`
	Energy     int `yaml:"energy"`
	Flotation  int `yaml:"flotation"`
	DMS        int `yaml:"dms"`
	Jigging    int `yaml:"jigging"`
	Dewatering int `yaml:"dewatering"`
}

// Config drives a pipeline run. Zero fields take the defaults from
// DefaultConfig, so a partial YAML file is a valid configuration.
type Config struct {
	// Seed initialises the run's single random stream.
	Seed int64 `yaml:"seed"`
	// OutputDir is where WriteCSV places the files.
	OutputDir string `yaml:"output_dir"`
	// Plant prefixes every output file name.
	Plant string `yaml:"plant"`

	// HighGradeCutoff is the blend classification boundary (% Mn).
	HighGradeCutoff float64 `yaml:"high_grade_cutoff"`
	// BlendRatio is the high grade share of the blended feed.
	BlendRatio float64 `yaml:"blend_ratio"`

	// LinkEquipment ties beneficiation circuits to equipment health.
	LinkEquipment bool `yaml:"link_equipment"`

	Samples SampleCounts `yaml:"samples"`
}

// DefaultConfig returns the documented run parameters.
func DefaultConfig() Config {
	return Config{
		Seed:            42,
		OutputDir:       "./synthetic",
		Plant:           "manganese",
		HighGradeCutoff: 60,
		BlendRatio:      0.3,
		Samples: SampleCounts{
			OreFeed:    10000,
			Crushing:   15000,
			Separation: 12000,
			Equipment:  8000,
			Energy:     10000,
			Flotation:  12000,
			DMS:        8000,
			Jigging:    10000,
			Dewatering: 8000,
		},
	}
}

// LoadConfig reads a YAML config file and fills zero fields with the
// defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parse config: %w", err)
	}

	return cfg.normalized(), nil
}

// normalized fills zero fields with their defaults, the zero seed
// included.
func (c Config) normalized() Config {
	def := DefaultConfig()

	if c.Seed == 0 {
		c.Seed = def.Seed
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.Plant == "" {
		c.Plant = def.Plant
	}
	if c.HighGradeCutoff == 0 {
		c.HighGradeCutoff = def.HighGradeCutoff
	}
	if c.BlendRatio == 0 {
		c.BlendRatio = def.BlendRatio
	}

	s, ds := &c.Samples, def.Samples
	if s.OreFeed == 0 {
		s.OreFeed = ds.OreFeed
	}
	if s.Crushing == 0 {
		s.Crushing = ds.Crushing
	}
	if s.Separation == 0 {
		s.Separation = ds.Separation
	}
	if s.Equipment == 0 {
		s.Equipment = ds.Equipment
	}
	if s.Energy == 0 {
		s.Energy = ds.Energy
	}
	if s.Flotation == 0 {
		s.Flotation = ds.Flotation
	}
	if s.DMS == 0 {
		s.DMS = ds.DMS
	}
	if s.Jigging == 0 {
		s.Jigging = ds.Jigging
	}
	if s.Dewatering == 0 {
		s.Dewatering = ds.Dewatering
	}

	return c
}
