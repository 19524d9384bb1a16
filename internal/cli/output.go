package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// numberAPI decodes integers as json.Number
var numberAPI = sonic.Config{UseNumber: true}.Froze()

func validFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", format)
}

// writeData renders a tool's data in the requested format. text is used for
// FormatText and may be nil.
func writeData(w io.Writer, format string, data map[string]interface{}, text func(map[string]interface{}) string) error {
	if format == FormatJSON {
		// json.Number keeps every digit, no normalization needed
		out, err := sonic.ConfigStd.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(out, '\n'))
		return err
	}

	norm, err := normalize(data)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(norm)
	case FormatTOML:
		out, err = toml.Marshal(norm)
	default:
		m, _ := norm.(map[string]interface{})
		if text == nil {
			text = renderText
		}
		out = []byte(text(m) + "\n")
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

// normalize brings local and remote results to the same shape: plain maps
// and slices, integers as int64 or, beyond int64, decimal strings. Nil
// values are dropped since TOML has no null.
func normalize(v interface{}) (interface{}, error) {
	raw, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var generic interface{}
	if err := numberAPI.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return convertNumbers(generic), nil
}

func convertNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if _, ok := new(big.Int).SetString(t.String(), 10); ok {
			return t.String()
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = convertNumbers(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = convertNumbers(val)
		}
		return out
	}
	return v
}

// renderText prints the result field alone when there is one, otherwise
// every field as "key: value" in key order
func renderText(data map[string]interface{}) string {
	if r, ok := data["result"]; ok {
		return plain(r)
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+plain(data[k]))
	}
	return strings.Join(lines, "\n")
}

func plain(v interface{}) string {
	if list, ok := v.([]interface{}); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = plain(item)
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprint(v)
}

// factorText renders "2^3 * 3^2 * 5" from the terms field
func factorText(data map[string]interface{}) string {
	terms, ok := data["terms"].([]interface{})
	if !ok {
		return renderText(data)
	}
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		m, ok := term.(map[string]interface{})
		if !ok {
			return renderText(data)
		}
		p := plain(m["prime"])
		if e := plain(m["exponent"]); e != "1" {
			p += "^" + e
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " * ")
}
