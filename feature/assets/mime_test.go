package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeType(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"HTML", "index.html", "text/html"},
		{"CSS", "css/site.css", "text/css"},
		{"JS", "app.js", "text/javascript"},
		{"JSON", "data.json", "application/json"},
		{"PNG", "img/logo.png", "image/png"},
		{"SVG", "icon.svg", "image/svg+xml"},
		{"UppercaseExt", "PHOTO.JPG", "image/jpeg"},
		{"Unknown", "archive.tar.zst", DefaultMimeType},
		{"NoExtension", "Makefile", DefaultMimeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MimeType(tt.file))
		})
	}
}
