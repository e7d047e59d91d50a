package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// TagParse marks a resource name that does not match its expected
	// structural pattern. Always fatal to the operation that needed
	// the parse.
	TagParse = goerr.NewTag("parse")

	// TagValidation marks a specification entry with a missing
	// required key, an empty one-of set, or a value outside its enum.
	// Fatal to the whole reconciliation pass.
	TagValidation = goerr.NewTag("validation")

	// TagRemote marks a failed create/patch call. Reported per entry
	// and aggregated; does not abort sibling calls.
	TagRemote = goerr.NewTag("remote")
)
