package wire

import (
	"fmt"

	callbacks "github.com/cosim-project/callbacks"
	"github.com/valyala/fastjson"
)

// parsers is shared across calls; one environment parses payloads from many
// components.
var parsers fastjson.ParserPool

// ParseLogMessage decodes a logger payload produced by LogMessage.Marshal.
func ParseLogMessage(payload []byte) (*LogMessage, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid log payload: %w", err)
	}

	m := &LogMessage{
		Instance: string(v.GetStringBytes("instance")),
		Status:   callbacks.Status(v.GetInt("status")),
		Category: string(v.GetStringBytes("category")),
		Template: string(v.GetStringBytes("template")),
	}

	for _, av := range v.GetArray("args") {
		m.Args = append(m.Args, Arg{
			Type:  string(av.GetStringBytes("type")),
			Value: string(av.GetStringBytes("value")),
		})
	}

	return m, nil
}

// ParseStepSignal decodes a step-completion payload produced by
// StepSignal.Marshal.
func ParseStepSignal(payload []byte) (*StepSignal, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid step payload: %w", err)
	}

	return &StepSignal{Status: callbacks.Status(v.GetInt("status"))}, nil
}
