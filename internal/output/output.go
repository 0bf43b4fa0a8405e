package output

import "github.com/maxvaer/dddtools/internal/inspect"

// Writer emits one inspection outcome: either a result or an error.
type Writer interface {
	WriteResult(result *inspect.Result) error
	WriteError(msg string) error
}
