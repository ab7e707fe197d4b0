package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-d", "x.db", "-l", "20", "-t", "10"}, expectPanic: false,
			expected: &Config{ServerBaseURL: "http://127.0.0.1:9090/api", DatabasePath: "x.db", HistoryLimit: 20, RequestTimeout: 10 * time.Second}},
		{name: "Test2 incorrect timeout", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"-a", "http://x", "-z", "noise"},
			allowed:  []string{"-a"},
			expected: []string{"-a", "http://x"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-a", "http://x"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "http://x"},
			allowed:  []string{"-b"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filterArgs(tt.args, tt.allowed))
		})
	}
}
