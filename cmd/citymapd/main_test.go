package main

import (
	"flag"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/katalvlaran/citymap/registry"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("citymapd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg, err := parseFlags(fs, []string{"-addr", ":9999", "-seed", "-log-level", "debug", "-shutdown-timeout", "5s"})
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.addr)
	assert.True(t, cfg.seed)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, 5*time.Second, cfg.shutdownTimeout)
}

func TestParseFlags_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("citymapd", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.addr)
	assert.False(t, cfg.seed)
	assert.Equal(t, 30*time.Second, cfg.shutdownTimeout)
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestSeedDemo(t *testing.T) {
	reg := registry.New()
	require.NoError(t, seedDemo(reg))

	name, g, ok := reg.Current()
	require.True(t, ok)
	assert.Equal(t, demoGraphName, name)
	assert.False(t, reg.Modified())
	assert.Equal(t, 4, g.NumberOfCities())
	assert.Equal(t, []string{demoGraphName, latticeGraphName}, reg.Names())

	lattice, ok := reg.Get(latticeGraphName)
	require.True(t, ok)
	assert.Equal(t, latticeSize*latticeSize, lattice.NumberOfCities())

	res := dijkstra.Distance(g, "A", "D")
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 25.0, res.DistanceOrTime)
}
