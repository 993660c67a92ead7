package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for the template package.
var (
	// ErrTemplate is the umbrella for catalog consistency failures.
	// Every rendering error below matches it with errors.Is.
	ErrTemplate = errors.New("template error")

	// ErrTemplateNotFound indicates the named template is not in the catalog.
	ErrTemplateNotFound = fmt.Errorf("%w: template not found", ErrTemplate)

	// ErrMissingTemplateKey indicates a placeholder has no value in the model.
	ErrMissingTemplateKey = fmt.Errorf("%w: unresolved placeholder", ErrTemplate)

	// ErrUnexpandedToken indicates foreign placeholder syntax in a template body.
	ErrUnexpandedToken = fmt.Errorf("%w: unexpanded token in template", ErrTemplate)

	// ErrSchemaViolation indicates a rendered descriptor failed schema validation.
	ErrSchemaViolation = fmt.Errorf("%w: schema violation", ErrTemplate)

	// ErrIO indicates a rendered output could not be persisted.
	ErrIO = errors.New("io error")

	// ErrPathTraversal indicates an output path escapes the output directory.
	ErrPathTraversal = fmt.Errorf("%w: path escapes output directory", ErrIO)
)

// WriteError records a failed write of a single output.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes every WriteError match ErrIO.
func (e *WriteError) Is(target error) bool {
	return target == ErrIO
}
