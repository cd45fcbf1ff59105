package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON mistakes in hand-edited or
// model-generated payloads: unquoted keys, single quotes, trailing commas,
// unclosed brackets, comments, and wrapping code fences.
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (Hjson) and returns standard JSON.
// Hjson supports comments, unquoted keys and strings, and optional commas,
// which makes it the preferred format for hand-written assumption files.
func ParseHJSON(hjsonData string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(hjsonData), &result); err != nil {
		return "", fmt.Errorf("HJSON_PARSE_ERROR: %v", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("JSON_MARSHAL_ERROR: %v", err)
	}
	return string(jsonBytes), nil
}

// Normalize turns lenient input into standard JSON.
// Order of attempts:
// 1. Standard JSON (returned untouched)
// 2. Hjson
// 3. JSON repair
func Normalize(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("NORMALIZE_FAILED: empty input")
	}
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	if out, err := ParseHJSON(trimmed); err == nil {
		return out, nil
	}

	if out, err := RepairJSON(trimmed); err == nil && json.Valid([]byte(out)) {
		return out, nil
	}

	return "", fmt.Errorf("NORMALIZE_FAILED: all parsing strategies failed for input")
}
