package config

import (
	"fmt"
)

// Section is a scoped accessor for one section of a File. It owns no data:
// reads and writes go through the owning store, with an optional
// process-local override map layered on top of reads.
type Section struct {
	name      string
	file      *File
	overrides map[string]string
}

// Name returns the section name the accessor is bound to.
func (s *Section) Name() string {
	return s.name
}

// SetOverrides replaces the override map wholesale. Overrides shadow stored
// values on Get but are never persisted and never consulted by Contains.
func (s *Section) SetOverrides(overrides map[string]string) {
	s.overrides = overrides
}

// Get returns the value for key, preferring an override when one is set,
// otherwise reading the store (with fallback to the defaults section).
// Returns an error wrapping ErrNoKey when the key is found in neither.
func (s *Section) Get(key string) (string, error) {
	if value, ok := s.overrides[key]; ok {
		return value, nil
	}
	k, ok := s.file.lookup(s.name, key)
	if !ok {
		return "", fmt.Errorf("%w: %q in section %q", ErrNoKey, key, s.name)
	}
	return k.Value(), nil
}

// Set writes key through to the store's section. Overrides are read-only
// shadowing; Set never touches them, so a shadowed key keeps returning its
// override from Get.
func (s *Section) Set(key, value string) {
	s.file.set(s.name, key, value)
}

// Contains reports whether key exists in the store (section or defaults
// fallback). Overrides are deliberately not consulted.
func (s *Section) Contains(key string) bool {
	_, ok := s.file.lookup(s.name, key)
	return ok
}

// CanSavePassword reports whether the user allowed saving the password to
// the system keychain. The built-in default is false. Returns an error when
// the stored value is not a recognized boolean literal.
func (s *Section) CanSavePassword() (bool, error) {
	k, ok := s.file.lookup(s.name, "save_password")
	if !ok {
		return false, fmt.Errorf("%w: %q in section %q", ErrNoKey, "save_password", s.name)
	}
	value, err := k.Bool()
	if err != nil {
		return false, fmt.Errorf("save_password in section %q: %w", s.name, err)
	}
	return value, nil
}
