package compare

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSONFormatter renders a comparison set as JSON for machine consumers.
// Pretty switches on two-space indentation.
type JSONFormatter struct {
	Pretty bool
}

// Format serializes the full set, ranks and recommendations included.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	if jf.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(compSet); err != nil {
		return "", err
	}

	// Encoder appends a newline; callers decide line endings.
	return strings.TrimRight(buf.String(), "\n"), nil
}
