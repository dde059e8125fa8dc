package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common errors in hand-written JSON config files.
// Uses github.com/RealAlexandreAI/json-repair for intelligent repair.
// Supported repairs:
// - Missing quotes around keys
// - Single quotes instead of double quotes
// - Trailing commas
// - Comments in JSON
// - Leading/trailing whitespace
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSONToStruct parses Human JSON (comments, unquoted keys, trailing
// commas) directly into the provided struct.
func ParseHJSONToStruct(hjsonData string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(hjsonData), schema); err != nil {
		return fmt.Errorf("HJSON_PARSE_ERROR: %v", err)
	}
	return nil
}

// ParseLenientJSON unmarshals data into schema, first as-is and then after a
// repair pass. This lets users feed sloppy but recoverable JSON files.
func ParseLenientJSON(data string, schema interface{}) error {
	if err := json.Unmarshal([]byte(data), schema); err == nil {
		return nil
	}

	repaired, err := RepairJSON(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(repaired), schema); err != nil {
		return fmt.Errorf("JSON_STRUCTURAL_ERROR: %v", err)
	}
	return nil
}
