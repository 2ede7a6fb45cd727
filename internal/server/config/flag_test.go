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

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", ":9090", "-d", "postgres://x/y", "-t", "3600", "-k", "7200"}, expectPanic: false,
			expected: &Config{EndpointAddrHTTP: ":9090", DatabaseDSN: "postgres://x/y", PageTTL: time.Hour, SweepWindow: 2 * time.Hour}},
		{name: "Test2 S3 and redis", args: []string{"cmd", "-r", "redis:6379", "-n", "2", "-u", "user", "-p", "password", "-b", "bucket", "-g", "region", "-e", "endpoint"}, expectPanic: false,
			expected: &Config{RedisAddr: "redis:6379", RedisDB: 2, S3RootUser: "user", S3RootPassword: "password", S3Bucket: "bucket", S3Region: "region", S3BaseEndpoint: "endpoint"}},
		{name: "Test3 incorrect ttl", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
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
