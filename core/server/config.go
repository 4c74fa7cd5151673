package server

// Config holds configuration for the HTTP servers.
type Config struct {
	// Port is the port where the form service will listen.
	Port string `mapstructure:"port" default:"3000"`
	// StaticPort is the port where the static asset server will listen.
	StaticPort string `mapstructure:"static_port" default:"3001"`
	// PublicRoot is the directory tree the static asset server serves from.
	PublicRoot string `mapstructure:"public_root" default:"public"`
	// IndexFile is the default document served for the root path.
	IndexFile string `mapstructure:"index_file" default:"index.html"`
	// Origin selects where static assets are read from (local, bucket).
	Origin string `mapstructure:"origin" default:"local"`
}

const (
	OriginLocal  = "local"
	OriginBucket = "bucket"
)

// IsValidOrigin checks if the configured asset origin is valid.
func (c Config) IsValidOrigin() bool {
	switch c.Origin {
	case OriginLocal, OriginBucket:
		return true
	default:
		return false
	}
}
