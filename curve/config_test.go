package curve

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "curve.yaml")

	err := os.WriteFile(file, []byte(`slotDuration: 30s
maxPointCount: 20
speeds: [1, 5]
aggregation: max
`), 0600)
	assert.Nil(t, err)

	cfg, err := LoadConfig(file)
	assert.Nil(t, err)
	assert.EqualValues(t, 30*time.Second, cfg.SlotDuration)
	assert.EqualValues(t, 20, cfg.MaxPointCount)
	assert.EqualValues(t, []int{1, 5}, cfg.Speeds)
	assert.EqualValues(t, AggregationMax, cfg.Aggregation)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestConfigDefaults(t *testing.T) {
	var nilCfg *Config

	cfg, err := nilCfg.withDefaults()
	assert.Nil(t, err)
	assert.EqualValues(t, time.Minute, cfg.SlotDuration)
	assert.EqualValues(t, 60, cfg.MaxPointCount)
	assert.EqualValues(t, []int{1}, cfg.Speeds)
	assert.EqualValues(t, AggregationAvg, cfg.Aggregation)

	src := &Config{Speeds: []int{2}}
	cfg, err = src.withDefaults()
	assert.Nil(t, err)

	cfg.Speeds[0] = 9
	assert.EqualValues(t, []int{2}, src.Speeds)
	assert.EqualValues(t, time.Duration(0), src.SlotDuration)
}
