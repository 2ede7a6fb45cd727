package config

import (
	"flag"
	"os"
	"time"

	"github.com/safenotes/safenotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address for the HTTP endpoint
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-w string   Redis password
//	-n int      Redis database number
//	-l string   public base URL of the service
//	-t int      page TTL in seconds
//	-k int      sweep window in seconds
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(config *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-w", "-n", "-l", "-t", "-k", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "bind address for the HTTP endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address")
	fs.StringVar(&config.RedisPassword, "w", config.RedisPassword, "Redis password")
	fs.IntVar(&config.RedisDB, "n", config.RedisDB, "Redis database number")
	fs.StringVar(&config.PublicBaseURL, "l", config.PublicBaseURL, "public base URL of the service")
	pageTTL := fs.Int("t", int(config.PageTTL.Seconds()), "page TTL (in seconds)")
	sweepWindow := fs.Int("k", int(config.SweepWindow.Seconds()), "sweep window (in seconds)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PageTTL = time.Duration(*pageTTL) * time.Second
	config.SweepWindow = time.Duration(*sweepWindow) * time.Second
}
