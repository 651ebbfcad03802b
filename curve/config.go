package curve

import (
	"os"
	"time"

	"github.com/sgostarter/i/commerr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlotDuration  time.Duration `yaml:"slotDuration" json:"slotDuration"`
	MaxPointCount int           `yaml:"maxPointCount" json:"maxPointCount"`
	Speeds        []int         `yaml:"speeds" json:"speeds"`
	Aggregation   string        `yaml:"aggregation" json:"aggregation"`
}

func LoadConfig(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// withDefaults returns a filled copy of cfg; cfg itself is not touched.
func (cfg *Config) withDefaults() (*Config, error) {
	var c Config

	if cfg != nil {
		c = *cfg
		c.Speeds = append([]int{}, cfg.Speeds...)
	}

	if c.SlotDuration <= 0 {
		c.SlotDuration = time.Minute
	}

	// slot labels have whole second resolution
	if c.SlotDuration < time.Second || c.SlotDuration%time.Second != 0 {
		return nil, commerr.ErrInvalidArgument
	}

	if c.MaxPointCount <= 0 {
		c.MaxPointCount = 60
	}

	if len(c.Speeds) == 0 {
		c.Speeds = []int{1}
	}

	for _, speed := range c.Speeds {
		if speed <= 0 {
			return nil, commerr.ErrInvalidArgument
		}
	}

	if c.Aggregation == "" {
		c.Aggregation = AggregationAvg
	}

	if _, err := AggregateByName(c.Aggregation); err != nil {
		return nil, err
	}

	return &c, nil
}
