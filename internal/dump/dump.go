// Package dump renders decoded records as YAML or deterministic CBOR.
//
// Records are rendered through their yaml and cbor struct tags. Enumerations
// and flag sets implement encoding.TextMarshaler and appear by name.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering.
type Format string

const (
	// YAML renders block-style YAML with two-space indentation.
	YAML Format = "yaml"
	// CBOR renders Core Deterministic CBOR (RFC 8949 §4.2).
	CBOR Format = "cbor"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case YAML, CBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown dump format %q (want yaml or cbor)", name)
	}
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("dump: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("dump: CBOR decoder initialization failed: " + err.Error())
	}
}

// Write renders v to w in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case YAML:
		return writeYAML(w, v)
	case CBOR:
		return encMode.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown dump format %q", f)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// Marshal renders v in format f.
func Marshal(f Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeCBOR reads a CBOR dump back into a generic tree of maps, slices and scalars.
func DecodeCBOR(data []byte) (any, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return v, nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of a CBOR dump.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
