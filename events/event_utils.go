package events

import "reflect"

// ExtractStreamID returns the stream an event belongs to: its ShoeID when it
// has one, otherwise its SessionID.
func ExtractStreamID(event Event) string {
	val := reflect.ValueOf(event)

	// If it's a pointer, get the underlying element
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return ""
	}

	for _, name := range []string{"ShoeID", "SessionID"} {
		field := val.FieldByName(name)
		if field.IsValid() && field.Kind() == reflect.String && field.String() != "" {
			return field.String()
		}
	}

	return ""
}
