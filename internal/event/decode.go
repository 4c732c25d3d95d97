package event

import "encoding/json"

// DecodePayload returns the payload as T. Events published in-process carry T or *T directly;
// payloads read back from the dead-letter file arrive as generic JSON and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
