package event

import "encoding/json"

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// MemoryBus delivers the original struct; serialized payloads take the JSON path.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
