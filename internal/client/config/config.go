package config

// Config holds runtime settings for the SafeNotes client.
//
// Fields:
//   - DatabasePath: location of the local settings/journal database.
//   - MediaDir: directory the journal copies media files into.
//   - PageServiceURL: base URL of the page service (generate + media metadata).
//   - SMSOpener: command used to hand sms: URIs to the platform.
//   - S3AccessKey / S3SecretKey: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - S3PublicBaseURL: base URL uploaded objects become reachable at.
type Config struct {
	DatabasePath    string
	MediaDir        string
	PageServiceURL  string
	SMSOpener       string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "safenotes.db"
	c.MediaDir = "media"
	c.PageServiceURL = "http://127.0.0.1:8080/"
	c.SMSOpener = "xdg-open"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "evidence"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3PublicBaseURL = "http://127.0.0.1:9000/"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
