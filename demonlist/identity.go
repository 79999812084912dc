package demonlist

import "strings"

// identities unifies usernames that appear with inconsistent casing across
// records. Lookup is by lowercased name, the casing a user was first seen
// with is the one kept for display.
type identities struct {
	display map[string]string
}

func newIdentities() *identities {
	return &identities{display: make(map[string]string)}
}

// Resolve returns the canonical display name, registering the given casing if
// the user has not been seen before.
func (ids *identities) Resolve(name string) string {
	key := strings.ToLower(name)
	if display, ok := ids.display[key]; ok {
		return display
	}
	ids.display[key] = name
	return name
}
