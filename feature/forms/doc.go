// Package forms implements the form persistence service.
//
// It renders a contact form, accepts POSTed submissions, appends them to the
// configured store (core/store) and exposes the collection both as a rendered
// page and as raw JSON.
//
// # Validation
//
// Name and email are required; phone and message are optional. An invalid
// submission redirects back to the form with an inline error message and
// persists nothing. There is no further schema validation.
//
// # Failure Behavior
//
// Store failures are logged and otherwise swallowed on the write path: the
// submitter is redirected to the listing page even when the append failed.
// On the read path the listing page renders an empty list with a visible
// error notice; only the raw JSON endpoint surfaces a structured error.
//
// # HTTP Endpoints
//
//   - GET / : Renders the form (optional ?message= inline notice).
//   - POST /submit : Accepts a submission, redirects to /display.
//   - GET /display : Renders submissions, most recent first.
//   - GET /api/data : Returns the collection as JSON in insertion order.
package forms
