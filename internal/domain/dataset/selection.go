package dataset

import "strings"

// Selection es la elección del usuario en un selector.
// El valor cero significa "sin selección" y no comparte espacio con ninguna clave.
type Selection struct {
	key string
	set bool
}

// NoSelection devuelve el estado "-- Select --".
func NoSelection() Selection { return Selection{} }

// Select crea una selección para key. Una key vacía (o solo espacios) equivale a NoSelection.
func Select(key string) Selection {
	if strings.TrimSpace(key) == "" {
		return Selection{}
	}
	return Selection{key: key, set: true}
}

// Key devuelve la clave y si hay selección.
func (s Selection) Key() (string, bool) {
	return s.key, s.set
}

func (s Selection) IsSet() bool { return s.set }

func (s Selection) String() string {
	if !s.set {
		return ""
	}
	return s.key
}
