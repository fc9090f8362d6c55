package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    func(c *Config)
		wantErr string
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			want:  func(c *Config) {},
		},
		{
			name:  "partial override",
			input: "iterations: 5\nworkers: 2\n",
			want: func(c *Config) {
				c.Iterations = 5
				c.Workers = 2
			},
		},
		{
			name:  "workload list replaces defaults",
			input: "workloads: [compose, grid-pairs]\n",
			want: func(c *Config) {
				c.Workloads = []string{"compose", "grid-pairs"}
			},
		},
		{
			name:    "unknown field",
			input:   "iteration: 5\n",
			wantErr: "decode config",
		},
		{
			name:    "unknown workload",
			input:   "workloads: [teleport]\n",
			wantErr: "unknown workload: teleport",
		},
		{
			name:    "non positive size",
			input:   "size: 0\n",
			wantErr: "size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			want := DefaultConfig()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		c, err := LoadConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 42\nlog_level: debug\n"), 0o644))

		c, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, int64(42), c.Seed)
		assert.Equal(t, "debug", c.LogLevel)
	})
}

func TestWorkloadNamesSorted(t *testing.T) {
	names := workloadNames()
	require.Len(t, names, len(workloads))
	assert.IsIncreasing(t, names)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("warn")
	assert.NoError(t, err)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
