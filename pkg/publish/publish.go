// Package publish distributes finished report images. Publication is a
// best-effort step: failures degrade the run with a warning and never undo
// the rendered artifact or the timestamp marker.
package publish

import "context"

// Publisher sends a finished PNG somewhere people will see it.
type Publisher interface {
	Publish(ctx context.Context, filename string, png []byte, caption string) error
}
