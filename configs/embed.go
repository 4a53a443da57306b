// Package configs provides embedded configuration templates for lexindex.
//
// Templates are embedded at build time using Go's //go:embed directive, so
// they travel inside the binary: source builds, release archives, and
// package-manager installs all carry the same files.
//
// The templates are used by:
//   - cmd/lexindex/cmd/init.go - creates .lexindex.yaml in the project root
//   - cmd/lexindex/cmd/config.go - creates the user config under ~/.config/lexindex/
//
// Configuration precedence (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. User config (~/.config/lexindex/config.yaml)
//  3. Project config (.lexindex.yaml)
//  4. Environment variables (LEXINDEX_*)
//
// To modify a template, edit the .yaml file in this directory and rebuild.
package configs

import _ "embed"

// UserConfigTemplate is the template for user/machine-level configuration.
// Created by `lexindex config init` at ~/.config/lexindex/config.yaml.
// Holds settings that apply to every project on this machine.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string

// ProjectConfigTemplate is the template for project-level configuration.
// Created by `lexindex init` at .lexindex.yaml in the project root.
// Holds settings that are version-controlled with the project, most
// importantly the pinned key alphabet.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
