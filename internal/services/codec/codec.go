// Package codec serializes assignment sets into opaque URL-safe
// payloads for transport between the generating and revealing sessions.
//
// The encoding is JSON wrapped in base64. That is obfuscation, not
// encryption: it keeps roles out of casual view in a shared URL, which
// is all this tool needs.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Encode serializes an assignment list into a payload string.
// Decode(Encode(a)) always yields a field-for-field equal to a.
func Encode(assignments []model.Assignment) (string, error) {
	data, err := json.Marshal(assignments)
	if err != nil {
		return "", fmt.Errorf("encoding assignments: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a payload back into an assignment list. Any failure is
// reported as model.ErrPayloadDecode so callers can distinguish a bad
// payload from a wrong password.
func Decode(payload string) ([]model.Assignment, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", model.ErrPayloadDecode)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}

	var assignments []model.Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}

	return assignments, nil
}
