// Package assets implements the static asset server.
//
// It maps request paths to files under a fixed public root, guards against
// directory traversal, and derives the content type from a fixed
// extension-to-MIME table (application/octet-stream for unknown extensions).
//
// # Sources
//
// Content comes from a Source, selected at startup:
//   - LocalSource reads from the public root directory on disk.
//   - BucketSource reads the same tree from an object storage bucket
//     (core/storage), for deployments that publish their assets with
//     'formdesk publish'.
//
// # Error Taxonomy
//
//   - 403 Forbidden: the request path escapes the public root. Checked
//     before the source is consulted.
//   - 404 Not Found: the source failed to produce the asset, for any reason.
//     Missing files and permission errors are deliberately indistinguishable.
//
// # HTTP Endpoints
//
//   - GET / : Serves the default document.
//   - GET /<path> : Serves <path> relative to the public root.
package assets
