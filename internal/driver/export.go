package driver

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// ExportJSON writes the compiled model as indented JSON.
func ExportJSON(w io.Writer, m *Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// ExportMsgpack writes the compiled model in msgpack framing. Field
// naming follows the json tags so both exports describe the same shape.
func ExportMsgpack(w io.Writer, m *Model) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(m)
}
