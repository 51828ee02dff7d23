package collection

import (
	"encoding/json"
	"strings"
)

// MarshalList serialises raw entries.
func MarshalList(raw []string) ([]byte, error) {
	if raw == nil {
		raw = []string{}
	}
	return json.Marshal(raw)
}

// UnmarshalList deserialises raw entries and upgrades the legacy single
// string form ("a, b, c").
func UnmarshalList(data []byte) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var legacy string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}
	for _, part := range strings.Split(legacy, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list, nil
}
