package commandconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pilulerouge/latexcmd/pkg/fileutil"
	"github.com/pilulerouge/latexcmd/pkg/logger"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var validatorLog = logger.New("commandconfig:validator")

// ErrConfigPathInvalid is returned by ValidateFile when the path is missing or
// is not a regular file.
var ErrConfigPathInvalid = errors.New("invalid configuration file path supplied")

// ValidateFile reads and validates the configuration at path.
func ValidateFile(path string, opts Options) (*Result, error) {
	validatorLog.Printf("Validating configuration file: %s", path)
	if !fileutil.FileExists(path) {
		return newResult(path), fmt.Errorf("%w: %s", ErrConfigPathInvalid, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		v := newViolation(KindParse, "", "", "Error loading configuration file: %v", err)
		v.Err = err
		return newResult(path), v
	}

	result, err := Validate(data, opts)
	result.Path = path
	return result, err
}

// Validate validates a configuration document.
//
// The returned Result is never nil. The error is nil on success, a *Violation
// for the first fatal problem, or, with Options.KeepGoing, every tag rule
// violation joined with errors.Join (see Violations).
func Validate(data []byte, opts Options) (*Result, error) {
	result := newResult("")

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		validatorLog.Printf("Failed to parse configuration: %v", err)
		v := newViolation(KindParse, "", "", "Error loading configuration file: %v", err)
		v.Err = err
		return result, v
	}

	if err := validateStructure(doc); err != nil {
		return result, err
	}

	w := &walker{
		result:    result,
		tags:      newTagRegistry(),
		collector: NewErrorCollector(!opts.KeepGoing),
	}
	if err := w.walk(doc); err != nil {
		return result, err
	}
	if w.collector.HasErrors() {
		validatorLog.Printf("Collected %d tag rule violations", w.collector.Count())
		return result, w.collector.Error()
	}

	validatorLog.Printf("Configuration valid: commands=%d, warnings=%d", result.Commands.Len(), len(result.Warnings))
	return result, nil
}

type walker struct {
	result    *Result
	tags      *tagRegistry
	collector *ErrorCollector
}

func damaged(format string, args ...any) *Violation {
	return newViolation(KindDamaged, "", "", "Configuration file is damaged: "+format, args...)
}

func (w *walker) walk(doc any) error {
	root, ok := doc.(map[string]any)
	if !ok {
		return damaged("top level must be an object")
	}

	blocks, ok := root["allCommands"].([]any)
	if !ok {
		return damaged("<allCommands> must be a list")
	}

	for i, rawBlock := range blocks {
		if err := validateBlock(i, rawBlock); err != nil {
			return err
		}
		block, ok := rawBlock.(map[string]any)
		if !ok {
			return damaged("command block %d must be an object", i)
		}
		blockType, ok := block["type"].(string)
		if !ok {
			return damaged("command block %d must have a string <type>", i)
		}
		commands, ok := block["commands"].([]any)
		if !ok {
			return damaged("command block %d must have a <commands> list", i)
		}

		validatorLog.Printf("Walking block %d: type=%s, commands=%d", i, blockType, len(commands))
		for _, command := range commands {
			v := w.visit(blockType, command)
			if v == nil {
				continue
			}
			if !v.tagRule() {
				return v
			}
			if err := w.collector.Add(v); err != nil {
				return err
			}
		}
	}

	w.readEnvironments(root["environments"])
	return nil
}

// readEnvironments copies the environment name lists into the result. A
// malformed section or list is skipped with a warning.
func (w *walker) readEnvironments(raw any) {
	if raw == nil {
		return
	}
	section, ok := raw.(map[string]any)
	if !ok {
		w.result.warn(WarningMalformedEnvironments, "", "", fmt.Sprintf(
			"Section <environments> is ignored: expected an object, found %s.", jsonTypeName(raw)))
		return
	}

	lists := []struct {
		key    string
		target *[]string
	}{
		{"consumeOptions", &w.result.Environments.ConsumeOptions},
		{"consumeArguments", &w.result.Environments.ConsumeArguments},
		{"table", &w.result.Environments.Table},
	}
	for _, l := range lists {
		values, ok := section[l.key]
		if !ok {
			continue
		}
		names, ok := stringList(values)
		if !ok {
			w.result.warn(WarningMalformedEnvironments, "", "", fmt.Sprintf(
				"Section <environments.%s> is ignored: expected a list of strings.", l.key))
			continue
		}
		*l.target = names
	}
}

func stringList(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item.(string)
		if !ok {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

// visit applies the command rules to a single entry and returns the violation
// it raises, if any.
func (w *walker) visit(blockType string, command any) *Violation {
	var (
		name   string
		fields map[string]any
	)
	switch c := command.(type) {
	case string:
		name = c
	case map[string]any:
		n, ok := c["name"].(string)
		if !ok {
			return damaged("command object without a string <name>")
		}
		name, fields = n, c
	default:
		return newViolation(KindInvalidCommand, "", "", "Command definition should be a string or an object. Found %s.", jsonTypeName(command))
	}

	if w.result.Commands.Has(name) {
		validatorLog.Printf("Duplicate command skipped: %s", name)
		w.result.warn(WarningDuplicateCommand, name, "", fmt.Sprintf("Command <%s> has a duplicate entry.", name))
		return nil
	}
	w.result.Commands.Add(name)

	def := Definition{Name: name, Type: blockType}
	defer func() { w.result.Definitions = append(w.result.Definitions, def) }()

	if fields != nil {
		if args, ok := fields["args"].([]any); ok {
			def.Args = len(args)
			def.External = hasExternalArgument(args)
		}
		if tag, ok := fields["tag"].(string); ok {
			def.Tag = tag
		}
	}

	// Bare names carry no fields, so only command objects are held to the
	// tag rules.
	if blockType != FormatType || fields == nil {
		return nil
	}

	rawTag, present := fields["tag"]
	if !present {
		return newViolation(KindMissingTag, name, "", "Command <%s> has FORMAT type and must have a <tag> property.", name)
	}
	tagString, ok := rawTag.(string)
	if !ok {
		return damaged("tag of command <%s> must be a string", name)
	}

	tag, ok := ParseTag(tagString)
	if !ok {
		return newViolation(KindInvalidTag, name, tagString, "Tag <%s> doesn't match tag name pattern %s", tagString, TagPattern)
	}

	if tag.Numbered() {
		return w.tags.registerNumbered(name, tag)
	}

	if v := checkArgs(name, fields); v != nil {
		return v
	}
	if !def.External {
		w.result.warn(WarningUnnumberedTag, name, tag.Raw, fmt.Sprintf(
			"Command <%s> has unnumbered tag <%s> which is reserved for commands with an external argument.", name, tag.Raw))
	}
	return w.tags.registerAlpha(name, tag)
}

// checkArgs rejects an "args" value that is neither null nor a list.
func checkArgs(name string, fields map[string]any) *Violation {
	raw, ok := fields["args"]
	if !ok || raw == nil {
		return nil
	}
	if _, ok := raw.([]any); !ok {
		return damaged("<args> of command <%s> must be a list", name)
	}
	return nil
}

// hasExternalArgument reports whether any argument object has
// "external": true.
func hasExternalArgument(args []any) bool {
	for _, a := range args {
		arg, ok := a.(map[string]any)
		if !ok {
			continue
		}
		if external, ok := arg["external"].(bool); ok && external {
			return true
		}
	}
	return false
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
