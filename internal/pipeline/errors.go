package pipeline

import "errors"

// ErrTemplatesUnavailable is logged (never returned — see ExtractPlays'
// no-error contract) when a Pipeline is constructed with an empty
// TemplateSet: the primary path is disabled for the life of that Pipeline,
// but the fallback path still runs on every call. Follows the teacher's
// codec/errors.go convention of a plain sentinel rather than a custom
// error type, even though here it only ever reaches a log line.
var ErrTemplatesUnavailable = errors.New("pipeline: template library unavailable")
