package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"vista/internal/inspect"
	"vista/internal/script"
)

// loadValue decodes path into a displayable value. JSON and TOML files decode
// into maps, slices, and scalars; any other file is treated as raw text.
// Decode failures come back as *script.Error with a frame pointing at the
// offending line, so the caller can hand them to inspect.CreateError directly.
func loadValue(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &script.Error{Code: script.ErrHostFault, Msg: err.Error()}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(path, data)
	case ".toml":
		return decodeTOML(path, data)
	default:
		return string(data), nil
	}
}

func decodeJSON(path string, data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		line := 0
		var synErr *json.SyntaxError
		if errors.As(err, &synErr) {
			line = lineOfOffset(data, synErr.Offset)
		}
		return nil, parseError(path, line, err)
	}
	return v, nil
}

func decodeTOML(path string, data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		line := 0
		var perr toml.ParseError
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		return nil, parseError(path, line, err)
	}
	return v, nil
}

// parseError wraps a decode failure the way an evaluation host reports a
// script error: message plus a single script-side frame at the failing line.
func parseError(path string, line int, err error) *script.Error {
	return &script.Error{
		Code: script.ErrParse,
		Msg:  err.Error(),
		Frames: []inspect.StackFrame{
			{Function: "decode", File: path, Line: line, Script: true},
		},
	}
}

// lineOfOffset converts a byte offset into a 1-based line number.
func lineOfOffset(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
