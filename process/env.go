// Package process holds the CLI commands wrapping the recoloring core.
package process

import (
	"context"

	"flavorize/jobs"
	"flavorize/lut"
)

// Env carries the shared process state into the kong commands: one table
// cache and one job gate for the whole run.
type Env struct {
	Ctx   context.Context
	Cache *lut.Cache
	Gate  *jobs.Gate
}
