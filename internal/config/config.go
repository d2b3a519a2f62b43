package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"git.sr.ht/~spc/go-log"
	"gopkg.in/ini.v1"
)

// DefaultSectionName is the section consulted when no profile is named.
// Older versions of the tool called it "default"; Load migrates that
// spelling (see Load).
const DefaultSectionName = "defaults"

// legacySectionName is the pre-rename spelling of the defaults section.
const legacySectionName = "default"

// builtinDefaults is seeded into the defaults section of every new File,
// before anything is loaded from disk.
var builtinDefaults = map[string]string{
	"save_password": "false",
}

// ErrNoKey is returned by Section.Get when a key is present neither in the
// section's overrides nor anywhere in the store.
var ErrNoKey = errors.New("no such key")

// File is the in-memory form of the onelogin-aws configuration file. It
// wraps an INI document and tracks which section acts as the defaults
// (fallback) section.
//
// A File is not safe for concurrent use; the tool holds one per process.
type File struct {
	// Out receives user-facing diagnostics (deprecation notice, save
	// confirmation, Initialise guidance). Defaults to os.Stdout.
	Out io.Writer

	path           string
	doc            *ini.File
	defaultSection string
}

// New returns a fresh store bound to path, with the defaults section seeded
// from the built-in defaults. Nothing is read from disk.
func New(path string) *File {
	f := &File{
		Out:            os.Stdout,
		path:           path,
		doc:            ini.Empty(),
		defaultSection: DefaultSectionName,
	}

	defaults := f.doc.Section(DefaultSectionName)
	keys := make([]string, 0, len(builtinDefaults))
	for key := range builtinDefaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		defaults.Key(key).SetValue(builtinDefaults[key])
	}

	return f
}

// Open returns a store bound to path, loaded from disk when the file exists.
// A missing file is not an error; the store simply starts uninitialised.
func Open(path string) (*File, error) {
	f := New(path)

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no configuration file at %v", path)
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", path, err)
	}
	defer file.Close()

	if err := f.Load(file); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file path the store is bound to.
func (f *File) Path() string {
	return f.path
}

// DefaultSection returns the name of the current defaults section.
func (f *File) DefaultSection() string {
	return f.defaultSection
}

// HasDefaults reports whether the defaults section holds settings beyond the
// built-in baseline.
func (f *File) HasDefaults() bool {
	defaults, err := f.doc.GetSection(DefaultSectionName)
	if err != nil {
		return false
	}
	return len(defaults.KeyStrings()) > len(builtinDefaults)
}

// IsInitialised reports whether the user has configured anything at all:
// at least one named section, or real settings in the defaults section.
func (f *File) IsInitialised() bool {
	return len(f.Sections()) > 0 || f.HasDefaults()
}

// Sections returns the named (non-default) section names in file order.
func (f *File) Sections() []string {
	var names []string
	for _, name := range f.doc.SectionStrings() {
		if name == ini.DefaultSection || name == DefaultSectionName {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Load parses INI text from r and merges it into the in-memory state.
// Sections already present (including the seeded defaults) keep their
// position; keys from r overwrite keys of the same name.
//
// For backwards compatibility, a file carrying a 'default' section while the
// 'defaults' section holds no real settings rebinds the default section name
// to 'default'. Only the name is rebound; no contents are copied.
func (f *File) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read configuration: %w", err)
	}

	parsed, err := ini.Load(data)
	if err != nil {
		return fmt.Errorf("cannot parse configuration: %w", err)
	}

	for _, section := range parsed.Sections() {
		if section.Name() == ini.DefaultSection && len(section.KeyStrings()) == 0 {
			continue
		}
		target := f.doc.Section(section.Name())
		for _, key := range section.Keys() {
			target.Key(key.Name()).SetValue(key.Value())
		}
	}
	log.Debugf("merged %d sections from configuration", len(parsed.Sections()))

	if f.hasSection(legacySectionName) && !f.HasDefaults() {
		fmt.Fprint(f.Out, "It looks like you're using the deprecated"+
			" 'default' section.\nConsider renaming the section to"+
			" 'defaults'.\n")
		f.defaultSection = legacySectionName
	}

	return nil
}

// Save serializes the store to w, preserving section and key order, and
// prints a confirmation naming the bound path.
func (f *File) Save(w io.Writer) error {
	if _, err := f.doc.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write configuration: %w", err)
	}
	fmt.Fprintf(f.Out, "Configuration written to '%v'.\n", f.path)
	return nil
}

// SaveFile writes the store to its bound path. The file may hold API
// secrets, so it is created user-readable only.
func (f *File) SaveFile() error {
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cannot open %v for writing: %w", f.path, err)
	}

	if err := f.Save(file); err != nil {
		file.Close()
		return err
	}
	log.Debugf("saved configuration to %v", f.path)
	return file.Close()
}

// Section returns an accessor for the named section, creating the section
// when it does not exist yet. An empty name resolves to the defaults
// section; the defaults section is never created a second time.
func (f *File) Section(name string) *Section {
	if name == "" {
		name = f.defaultSection
	}
	if name != f.defaultSection && !f.hasSection(name) {
		f.doc.Section(name)
	}
	return &Section{name: name, file: f}
}

func (f *File) hasSection(name string) bool {
	_, err := f.doc.GetSection(name)
	return err == nil
}

// lookup resolves a key within a section, falling back to the defaults
// section. The fallback always targets the literal defaults section, even
// after the legacy-name migration: the migration rebinds what Section("")
// resolves to, not where reads fall back to.
func (f *File) lookup(section, key string) (*ini.Key, bool) {
	if sec, err := f.doc.GetSection(section); err == nil && sec.HasKey(key) {
		return sec.Key(key), true
	}
	if def, err := f.doc.GetSection(DefaultSectionName); err == nil && def.HasKey(key) {
		return def.Key(key), true
	}
	return nil, false
}

func (f *File) set(section, key, value string) {
	f.doc.Section(section).Key(key).SetValue(value)
}
