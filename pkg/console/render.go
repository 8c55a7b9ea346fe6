package console

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pilulerouge/latexcmd/pkg/logger"
)

var renderLog = logger.New("console:render")

// RenderStruct renders a struct as markdown-style sections using reflection.
// Scalar fields become aligned "key: value" lines, slices of structs become
// tables, other slices become bullet lists.
//
// Struct tags:
//   - `console:"title:My Title"` - section title for a nested struct or slice
//   - `console:"header:Column"` - display name of a field or column
//   - `console:"default:none"` - text shown for zero values
//   - `console:"maxlen:20"` - truncate long values
//   - `console:"omitempty"` - skip zero values
//   - `console:"-"` - skip the field
func RenderStruct(v any) string {
	renderLog.Printf("Rendering struct: type=%T", v)
	var output strings.Builder
	renderValue(reflect.ValueOf(v), "", &output, 0)
	return output.String()
}

func renderValue(val reflect.Value, title string, output *strings.Builder, depth int) {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		renderStruct(val, title, output, depth)
	case reflect.Slice, reflect.Array:
		renderSlice(val, title, output, depth)
	}
}

func writeTitle(output *strings.Builder, title string, depth int) {
	if title == "" {
		return
	}
	fmt.Fprintf(output, "%s %s\n\n", strings.Repeat("#", depth+1), title)
}

func renderStruct(val reflect.Value, title string, output *strings.Builder, depth int) {
	typ := val.Type()
	writeTitle(output, title, depth)

	type scalar struct {
		name  string
		value string
	}
	var scalars []scalar
	type nested struct {
		title string
		value reflect.Value
	}
	var sections []nested

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		tag := parseConsoleTag(fieldType.Tag.Get("console"))
		if tag.skip || (tag.omitempty && isZeroValue(field)) {
			continue
		}

		name := fieldType.Name
		if tag.header != "" {
			name = tag.header
		}

		inner := field
		if inner.Kind() == reflect.Ptr && !inner.IsNil() {
			inner = inner.Elem()
		}
		switch inner.Kind() {
		case reflect.Struct, reflect.Slice, reflect.Array:
			sectionTitle := tag.title
			if sectionTitle == "" {
				sectionTitle = name
			}
			sections = append(sections, nested{title: sectionTitle, value: field})
		default:
			scalars = append(scalars, scalar{name: name, value: formatFieldValueWithTag(field, tag)})
		}
	}

	width := 0
	for _, s := range scalars {
		width = max(width, len(s.name))
	}
	for _, s := range scalars {
		fmt.Fprintf(output, "  %-*s: %s\n", width, s.name, s.value)
	}
	if len(scalars) > 0 {
		output.WriteString("\n")
	}

	for _, s := range sections {
		renderValue(s.value, s.title, output, depth+1)
	}
}

func renderSlice(val reflect.Value, title string, output *strings.Builder, depth int) {
	if val.Len() == 0 {
		return
	}
	writeTitle(output, title, depth)

	elemType := val.Type().Elem()
	for elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}

	if elemType.Kind() == reflect.Struct {
		output.WriteString(RenderTable(buildTableConfig(val, elemType)))
		output.WriteString("\n")
		return
	}

	for i := range val.Len() {
		fmt.Fprintf(output, "%s\n", FormatListItem(formatFieldValue(val.Index(i))))
	}
	output.WriteString("\n")
}

func buildTableConfig(val reflect.Value, elemType reflect.Type) TableConfig {
	var config TableConfig
	var indices []int
	var tags []consoleTag

	for i := range elemType.NumField() {
		field := elemType.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := parseConsoleTag(field.Tag.Get("console"))
		if tag.skip {
			continue
		}
		header := field.Name
		if tag.header != "" {
			header = tag.header
		}
		config.Headers = append(config.Headers, header)
		indices = append(indices, i)
		tags = append(tags, tag)
	}

	for i := range val.Len() {
		elem := val.Index(i)
		for elem.Kind() == reflect.Ptr && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			continue
		}
		row := make([]string, len(indices))
		for j, idx := range indices {
			row[j] = formatFieldValueWithTag(elem.Field(idx), tags[j])
		}
		config.Rows = append(config.Rows, row)
	}
	return config
}

type consoleTag struct {
	title      string
	header     string
	defaultVal string
	maxLen     int
	omitempty  bool
	skip       bool
}

func parseConsoleTag(tag string) consoleTag {
	var result consoleTag
	if tag == "-" {
		result.skip = true
		return result
	}
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "omitempty":
			result.omitempty = true
		case strings.HasPrefix(part, "title:"):
			result.title = strings.TrimPrefix(part, "title:")
		case strings.HasPrefix(part, "header:"):
			result.header = strings.TrimPrefix(part, "header:")
		case strings.HasPrefix(part, "default:"):
			result.defaultVal = strings.TrimPrefix(part, "default:")
		case strings.HasPrefix(part, "maxlen:"):
			if n, err := strconv.Atoi(strings.TrimPrefix(part, "maxlen:")); err == nil {
				result.maxLen = n
			}
		}
	}
	return result
}

func isZeroValue(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return val.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return val.IsNil()
	default:
		return val.IsZero()
	}
}

func formatFieldValue(val reflect.Value) string {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "-"
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return "-"
	}
	if val.Kind() == reflect.String {
		if val.Len() == 0 {
			return "-"
		}
		return val.String()
	}
	if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.String {
		if val.Len() == 0 {
			return "-"
		}
		parts := make([]string, val.Len())
		for i := range val.Len() {
			parts[i] = val.Index(i).String()
		}
		return strings.Join(parts, ", ")
	}
	if !val.CanInterface() {
		return val.Type().String()
	}
	return fmt.Sprintf("%v", val.Interface())
}

func formatFieldValueWithTag(val reflect.Value, tag consoleTag) string {
	value := formatFieldValue(val)
	if tag.defaultVal != "" && isZeroValue(val) {
		value = tag.defaultVal
	}
	if tag.maxLen > 0 && len(value) > tag.maxLen {
		if tag.maxLen > 3 {
			return value[:tag.maxLen-3] + "..."
		}
		return value[:tag.maxLen]
	}
	return value
}
