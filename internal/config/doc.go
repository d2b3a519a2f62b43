// Package config manages the onelogin-aws configuration file.
//
// # Usage
//
// Open a store bound to the user's config file, pick a profile section, and
// read or write settings through it:
//
//	cfg, err := config.Open(path)
//	if err != nil {
//	    return err
//	}
//	profile := cfg.Section("work")
//	appID, err := profile.Get("aws_app_id")
//
// Command-line values that should shadow the file for the current process
// only are layered on with SetOverrides:
//
//	profile.SetOverrides(map[string]string{"subdomain": "example"})
//
// Changes are persisted explicitly:
//
//	err = cfg.SaveFile()
//
// # File format
//
// The file is INI text: one [section] per profile plus a reserved [defaults]
// section acting as the fallback for every profile. Section and key order is
// preserved across load and save. Files written by older versions of the
// tool named the reserved section [default]; Load detects that spelling,
// prints a deprecation notice and keeps reading and writing the legacy
// section so existing setups keep working.
//
// # Internal architecture
//
//   - File: wraps an ini.v1 document by composition and owns the default
//     section name, the built-in defaults and all load/save behavior. The
//     INI library never leaks through the package API.
//
//   - Section: a thin view bound to one section name and its owning File.
//     It holds no data of its own besides the override map.
//
//   - Prompter: the interactive collaborator used by Initialise, kept as an
//     interface so the flow is testable without a terminal.
package config
