package commandconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var schemaLog = logger.New("commandconfig:schema")

//go:embed schemas/config.schema.json
var configSchemaJSON []byte

const configSchemaURL = "https://github.com/pilulerouge/latexcmd/config.schema.json"

type compiledSchemas struct {
	document *jsonschema.Schema
	block    *jsonschema.Schema
}

// The document schema only covers the top-level shape. Command blocks are
// checked one at a time as the walk reaches them so that problems surface in
// document order. Command entries are left to the walk so that their errors
// carry the command name.
var configSchemas = sync.OnceValues(func() (*compiledSchemas, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded configuration schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(configSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to register configuration schema: %w", err)
	}
	document, err := c.Compile(configSchemaURL)
	if err != nil {
		return nil, err
	}
	block, err := c.Compile(configSchemaURL + "#/$defs/commandBlock")
	if err != nil {
		return nil, err
	}
	return &compiledSchemas{document: document, block: block}, nil
})

var schemaPrinter = message.NewPrinter(language.English)

// validateStructure checks the top-level shape of doc. A mismatch is reported
// as a KindDamaged violation pointing at the offending location.
func validateStructure(doc any) error {
	schemas, err := configSchemas()
	if err != nil {
		return err
	}
	return checkSchema(schemas.document, doc, nil)
}

// validateBlock checks the command block found at /allCommands/<index>.
func validateBlock(index int, block any) error {
	schemas, err := configSchemas()
	if err != nil {
		return err
	}
	return checkSchema(schemas.block, block, []string{"allCommands", strconv.Itoa(index)})
}

func checkSchema(schema *jsonschema.Schema, instance any, base []string) error {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	leaf := deepestCause(ve)
	location := "/" + strings.Join(append(slices.Clone(base), leaf.InstanceLocation...), "/")
	detail := leaf.ErrorKind.LocalizedString(schemaPrinter)
	schemaLog.Printf("Schema validation failed: location=%s, detail=%s", location, detail)

	v := newViolation(KindDamaged, "", "", "Configuration file is damaged: at %s: %s", location, detail)
	v.Err = err
	return v
}

// deepestCause follows the first cause chain down to the most specific error.
func deepestCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
