package hyp3

import "fmt"

// InputNotFoundError reports a missing input directory or a directory
// containing no recognizable HyP3 products. Callers must abort before
// touching the output tree.
type InputNotFoundError struct {
	Path   string
	Reason string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input not found at %s: %s", e.Path, e.Reason)
}
