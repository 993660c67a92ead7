package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yuekcc/init-nodejs-project/internal/defs"
)

//go:embed schema/package.schema.json
var packageSchemaBytes []byte

var (
	packageSchema     *jsonschema.Schema
	packageSchemaOnce sync.Once
	packageSchemaErr  error
	printer           = message.NewPrinter(language.English)
)

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the instance, e.g. "/private"
	Message string
	Keyword string // failing schema keyword, e.g. "type"
}

// String formats the issue as "<path>: <message> [<keyword>]".
func (i ValidationIssue) String() string {
	s := i.Message
	if i.Keyword != "" {
		s += " [" + i.Keyword + "]"
	}
	if i.Path == "" {
		return s
	}
	return i.Path + ": " + s
}

func getPackageSchema() (*jsonschema.Schema, error) {
	packageSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(packageSchemaBytes))
		if err != nil {
			packageSchemaErr = fmt.Errorf("unmarshal package schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			packageSchemaErr = fmt.Errorf("add package schema: %w", err)
			return
		}
		packageSchema, packageSchemaErr = c.Compile("package.schema.json")
		if packageSchemaErr != nil {
			packageSchemaErr = fmt.Errorf("compile package schema: %w", packageSchemaErr)
		}
	})
	return packageSchema, packageSchemaErr
}

// ValidateOutput checks rendered contents for outputs that carry a schema.
// Outputs without a schema always pass.
func ValidateOutput(name string, contents []byte) error {
	if name != defs.PackageJSON {
		return nil
	}

	schema, err := getPackageSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(contents))
	if err != nil {
		return fmt.Errorf("%w: %s is not valid JSON: %v", ErrSchemaViolation, name, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	issues := collectIssues(ve)
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, name, strings.Join(msgs, "; "))
}

// collectIssues flattens the validation error tree into leaf issues.
func collectIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	walkIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return issues
}

func walkIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			walkIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	var keyword, msg string
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "$ref" {
		return
	}

	*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
}
