package event

import jsoniter "github.com/json-iterator/go"

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// Payloads published on the MemoryBus are already the correct struct; payloads read back
// from the dead-letter file arrive as generic maps and go through the JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if v, ok := input.(*T); ok && v != nil {
		return *v, nil
	}
	var result T
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &result)
}
