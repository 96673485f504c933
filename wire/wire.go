package wire

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	callbacks "github.com/cosim-project/callbacks"
)

// Arg type discriminators.
const (
	KindString  = "string"
	KindInt     = "int64"
	KindUint    = "uint64"
	KindFloat   = "float64"
	KindBool    = "bool"
	KindPointer = "pointer"
)

// Arg is one typed template argument in its wire representation.
type Arg struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LogMessage is the wire form of one logger invocation.
type LogMessage struct {
	Instance string           `json:"instance"`
	Status   callbacks.Status `json:"status"`
	Category string           `json:"category"`
	Template string           `json:"template"`
	Args     []Arg            `json:"args,omitempty"`
}

// StepSignal is the wire form of one step-completion notification.
type StepSignal struct {
	Status callbacks.Status `json:"status"`
}

// Args classifies native Go values into their wire representation.
// Pointers travel as their %p rendering and come back as text; anything
// unclassifiable is flattened to its %v rendering.
func Args(values ...any) []Arg {
	if len(values) == 0 {
		return nil
	}

	out := make([]Arg, 0, len(values))
	for _, v := range values {
		out = append(out, toArg(v))
	}
	return out
}

func toArg(v any) Arg {
	switch val := v.(type) {
	case string:
		return Arg{Type: KindString, Value: val}
	case int:
		return Arg{Type: KindInt, Value: strconv.FormatInt(int64(val), 10)}
	case int8:
		return Arg{Type: KindInt, Value: strconv.FormatInt(int64(val), 10)}
	case int16:
		return Arg{Type: KindInt, Value: strconv.FormatInt(int64(val), 10)}
	case int32:
		return Arg{Type: KindInt, Value: strconv.FormatInt(int64(val), 10)}
	case int64:
		return Arg{Type: KindInt, Value: strconv.FormatInt(val, 10)}
	case uint:
		return Arg{Type: KindUint, Value: strconv.FormatUint(uint64(val), 10)}
	case uint8:
		return Arg{Type: KindUint, Value: strconv.FormatUint(uint64(val), 10)}
	case uint16:
		return Arg{Type: KindUint, Value: strconv.FormatUint(uint64(val), 10)}
	case uint32:
		return Arg{Type: KindUint, Value: strconv.FormatUint(uint64(val), 10)}
	case uint64:
		return Arg{Type: KindUint, Value: strconv.FormatUint(val, 10)}
	case uintptr:
		return Arg{Type: KindPointer, Value: fmt.Sprintf("0x%x", uint64(val))}
	case float32:
		return Arg{Type: KindFloat, Value: strconv.FormatFloat(float64(val), 'g', -1, 32)}
	case float64:
		return Arg{Type: KindFloat, Value: strconv.FormatFloat(val, 'g', -1, 64)}
	case bool:
		return Arg{Type: KindBool, Value: strconv.FormatBool(val)}
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer || rv.Kind() == reflect.UnsafePointer {
			return Arg{Type: KindPointer, Value: fmt.Sprintf("%p", v)}
		}
		return Arg{Type: KindString, Value: fmt.Sprintf("%v", v)}
	}
}

// pointerText is the decoded form of a pointer argument: the sending
// side's %p rendering. It satisfies fmt.Formatter so the recorded address
// substitutes under %p, the verb a caller who passed a pointer most likely
// wrote, as well as under %v or %s.
type pointerText string

// Format writes the recorded address regardless of verb.
func (p pointerText) Format(f fmt.State, verb rune) {
	io.WriteString(f, string(p))
}

// Values restores typed Go values from their wire representation, in order.
// Malformed values fall back to their raw text; a template/argument
// mismatch is a caller contract violation, not an error this package
// detects.
func Values(args []Arg) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, 0, len(args))
	for _, a := range args {
		out = append(out, fromArg(a))
	}
	return out
}

func fromArg(a Arg) any {
	switch a.Type {
	case KindInt:
		if n, err := strconv.ParseInt(a.Value, 10, 64); err == nil {
			return n
		}
	case KindUint:
		if n, err := strconv.ParseUint(a.Value, 10, 64); err == nil {
			return n
		}
	case KindFloat:
		if f, err := strconv.ParseFloat(a.Value, 64); err == nil {
			return f
		}
	case KindBool:
		if b, err := strconv.ParseBool(a.Value); err == nil {
			return b
		}
	case KindPointer:
		return pointerText(a.Value)
	}
	return a.Value
}

// Marshal encodes the message for transport.
func (m *LogMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Render performs the placeholder substitution the sending side deferred.
func (m *LogMessage) Render() string {
	return fmt.Sprintf(m.Template, Values(m.Args)...)
}

// Marshal encodes the signal for transport.
func (s *StepSignal) Marshal() ([]byte, error) {
	return json.Marshal(s)
}
