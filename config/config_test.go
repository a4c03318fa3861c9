package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/studentviz/engine"
)

func TestParseAppliesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := Parse([]byte(`{"binCount": 8, "dropEmptyBins": true}`))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.BinCount)
	assert.True(t, cfg.DropEmptyBins)
	assert.Equal(t, engine.FieldGPA, cfg.BinField)
	assert.Equal(t, 0.0, *cfg.DomainLow)
	assert.Equal(t, 4.0, *cfg.DomainHigh)
	assert.Equal(t, engine.FieldAge, cfg.CategoryField)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestParseExplicitZeroDomain(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg, err := Parse([]byte(`{"binField": "study_time_weekly", "domainLow": 0, "domainHigh": 20, "binCount": 5}`))
	require.NoError(t, err)
	assert.Equal(t, engine.FieldStudyTimeWeekly, cfg.BinField)
	assert.Equal(t, 20.0, *cfg.DomainHigh)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	for name, body := range map[string]string{
		"unknown field":  `{"scatterX": "height"}`,
		"negative count": `{"binCount": -1}`,
		"reversed":       `{"domainLow": 4, "domainHigh": 0}`,
		"log level":      `{"logLevel": "loud"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestEnvOverridesLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Parse([]byte(`{"logLevel": "warn"}`))
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadAndOptions(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categoryField": "gender", "categories": [1, 0], "binCount": 2}`), 0o600))

	cfg := MustLoad(path)
	records := []engine.StudentRecord{
		{Age: 16, GPA: 1, Gender: 0, StudyTimeWeekly: 2},
		{Age: 17, GPA: 3, Gender: 1, StudyTimeWeekly: 10},
	}

	dash, err := engine.Execute(records, engine.NewFilterState(), cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, dash.Categories)
	require.Len(t, dash.Histogram, 2)
	assert.Equal(t, "0–2", dash.Histogram[0].Label)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.json")) })
}
