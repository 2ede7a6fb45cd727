package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{name: "Test1 OK", args: []string{"cmd", "-d", "/tmp/x.db", "-m", "/tmp/media", "-a", "https://pages.example.com/"},
			expected: &Config{DatabasePath: "/tmp/x.db", MediaDir: "/tmp/media", PageServiceURL: "https://pages.example.com/"}},
		{name: "Test2 S3 flags", args: []string{"cmd", "-u", "user", "-p", "password", "-b", "bucket", "-g", "region", "-e", "endpoint", "-l", "public"},
			expected: &Config{S3AccessKey: "user", S3SecretKey: "password", S3Bucket: "bucket", S3Region: "region", S3BaseEndpoint: "endpoint", S3PublicBaseURL: "public"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
