package presence

import (
	"fmt"
)

// UnknownNameError is returned when a name of a presence value is not known.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func nameOf(kind string, names []string, v int) (string, error) {
	if v < 0 || v >= len(names) {
		return "", fmt.Errorf("invalid %s value %d", kind, v)
	}
	return names[v], nil
}

func lookupName(kind string, names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, &UnknownNameError{Kind: kind, Name: s}
}

func unmarshalName(kind string, names []string, unmarshal func(interface{}) error) (int, error) {
	var s string
	if err := unmarshal(&s); err != nil {
		return 0, err
	}
	return lookupName(kind, names, s)
}

func describe(kind string, descriptions []string, v int) string {
	if v < 0 || v >= len(descriptions) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return descriptions[v]
}
