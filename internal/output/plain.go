package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/taskenv/cli/internal/colorize"
	"github.com/taskenv/cli/internal/locale"
	"github.com/taskenv/cli/internal/logging"
)

// Plain is the human readable outputer. Values are rendered via their
// Stringer implementation where available, otherwise via light reflection.
type Plain struct {
	cfg *Config
}

func (f *Plain) Print(value interface{}) {
	f.write(f.cfg.OutWriter, value)
	f.cfg.OutWriter.Write([]byte("\n"))
}

func (f *Plain) Error(value interface{}) {
	f.write(f.cfg.ErrWriter, fmt.Sprintf("[ERROR]%s[/RESET]", asString(value)))
	f.cfg.ErrWriter.Write([]byte("\n"))
}

func (f *Plain) Notice(value interface{}) {
	f.write(f.cfg.ErrWriter, value)
	f.cfg.ErrWriter.Write([]byte("\n"))
}

func (f *Plain) Config() *Config {
	return f.cfg
}

func (f *Plain) write(writer io.Writer, value interface{}) {
	v, err := sprint(value)
	if err != nil {
		logging.Error("Could not sprint value: %v, error: %v", value, err)
		colorize.ColorizedOrStrip(fmt.Sprintf("[ERROR]%s[/RESET]", locale.Tl("err_sprint", "Could not render output: {{.V0}}", err.Error())), f.cfg.ErrWriter, f.cfg.Colored)
		return
	}
	colorize.ColorizedOrStrip(v, writer, f.cfg.Colored)
}

func asString(value interface{}) string {
	s, err := sprint(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return s
}

func sprint(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}

	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String(), nil
	}
	if err, ok := value.(error); ok {
		return err.Error(), nil
	}

	valueRfl := reflect.ValueOf(value)
	switch valueRfl.Kind() {
	case reflect.Ptr:
		if valueRfl.IsNil() {
			return "", nil
		}
		return sprint(valueRfl.Elem().Interface())
	case reflect.Struct:
		return sprintStruct(valueRfl)
	case reflect.Slice, reflect.Array:
		return sprintSlice(valueRfl)
	case reflect.Map:
		return sprintMap(valueRfl)
	case reflect.String:
		return valueRfl.String(), nil
	case reflect.Bool:
		return fmt.Sprintf("%t", valueRfl.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", value), nil
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.2f", valueRfl.Float()), nil
	}

	return "", fmt.Errorf("unknown type: %s", valueRfl.Type().String())
}

func sprintStruct(valueRfl reflect.Value) (string, error) {
	structType := valueRfl.Type()
	result := []string{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		stringValue, err := sprint(valueRfl.Field(i).Interface())
		if err != nil {
			return "", err
		}

		// the locale tag is "id" or "id,fallback"
		key := field.Name
		if tag, ok := field.Tag.Lookup("locale"); ok && tag != "" {
			parts := strings.SplitN(tag, ",", 2)
			fallback := parts[0]
			if len(parts) > 1 && parts[1] != "" {
				fallback = parts[1]
			}
			key = locale.Tl(parts[0], fallback)
		}

		result = append(result, fmt.Sprintf("%s: %s", key, stringValue))
	}
	return strings.Join(result, "\n"), nil
}

func sprintSlice(valueRfl reflect.Value) (string, error) {
	result := []string{}
	for i := 0; i < valueRfl.Len(); i++ {
		stringValue, err := sprint(valueRfl.Index(i).Interface())
		if err != nil {
			return "", err
		}
		result = append(result, stringValue)
	}

	if len(result) == 0 {
		return "", nil
	}
	return " - " + strings.Join(result, "\n - "), nil
}

func sprintMap(valueRfl reflect.Value) (string, error) {
	result := []string{}
	iter := valueRfl.MapRange()
	for iter.Next() {
		stringValue, err := sprint(iter.Value().Interface())
		if err != nil {
			return "", err
		}
		result = append(result, fmt.Sprintf("%v: %s", iter.Key().Interface(), stringValue))
	}
	return strings.Join(result, "\n"), nil
}
