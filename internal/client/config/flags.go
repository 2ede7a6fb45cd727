package config

import (
	"flag"
	"os"

	"github.com/safenotes/safenotes/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local settings database
//	-m string   directory holding journaled media copies
//	-a string   base URL of the page service
//	-o string   command used to hand sms: URIs to the platform
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-l string   public base URL media objects are served from
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-a", "-o", "-u", "-p", "-b", "-g", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local settings database")
	fs.StringVar(&cfg.MediaDir, "m", cfg.MediaDir, "directory holding journaled media copies")
	fs.StringVar(&cfg.PageServiceURL, "a", cfg.PageServiceURL, "base URL of the page service")
	fs.StringVar(&cfg.SMSOpener, "o", cfg.SMSOpener, "command used to hand sms: URIs to the platform")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket name")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3PublicBaseURL, "l", cfg.S3PublicBaseURL, "public base URL media objects are served from")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
