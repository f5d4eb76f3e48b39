package jset

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// EncodeParameters serializes p as human-editable TOML. The text
// enumerates every field, so DecodeParameters(EncodeParameters(p))
// reproduces p exactly.
func EncodeParameters(p *ParameterSet) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}
	return data, nil
}

// DecodeParameters parses parameter text and validates every invariant.
// Malformed text or an invariant violation returns an error naming the
// offending field; no partially populated set is ever returned.
func DecodeParameters(data []byte) (*ParameterSet, error) {
	var p ParameterSet
	if err := toml.Unmarshal(data, &p); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parameter text at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parameter text: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
