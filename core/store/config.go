package store

// Config holds configuration for the submission store.
type Config struct {
	// Backend selects the store implementation (file, mysql).
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the location of the backing document for the file backend.
	Path string `mapstructure:"path" default:"data/submissions.json"`
}

const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendMySQL:
		return true
	default:
		return false
	}
}
