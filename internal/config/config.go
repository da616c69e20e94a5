// Copyright 2025 The promptdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is
// provided via promptdiff.Option and render.Option.
package config

// MarkerSet holds the bracket markers the character highlighter wraps around runes
// that are missing from the other side of a modified line pair.
type MarkerSet struct {
	DeleteStart, DeleteEnd string
	InsertStart, InsertEnd string
}

// ColorConfig holds the ANSI SGR sequences used per line classification when
// colorized output is enabled.
type ColorConfig struct {
	Add    string
	Remove string
	Modify string
	Reset  string
}

// Config collects all configurable parameters for the comparison and render functions
// in this module.
type Config struct {
	// Comparison parameters.

	// If set, runs of whitespace are collapsed and trimmed before comparing.
	IgnoreWhitespace bool

	// If set, lines are case-folded before comparing.
	IgnoreCase bool

	// Context is the number of unchanged lines to keep around changes when output is
	// windowed. Reserved: carried through but observed by no renderer yet.
	Context int

	// ModifyThreshold is the similarity above which an off-backbone line pair is
	// classified as a single modification instead of a removal and an addition.
	ModifyThreshold float64

	// Render parameters.

	// If set, rendered lines are prefixed with their document positions.
	LineNumbers bool

	// If set, output is colored with ANSI escape sequences from Colors.
	Colorize bool

	// Width is the column width for side-by-side output.
	Width int

	// If set, modified lines are re-diffed at character granularity and the changed
	// runes are wrapped in Markers.
	Highlight bool

	Markers MarkerSet
	Colors  ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Context:         3,
	ModifyThreshold: 0.3,
	Width:           40,
	Highlight:       true,
	Markers: MarkerSet{
		DeleteStart: "[-",
		DeleteEnd:   "-]",
		InsertStart: "[+",
		InsertEnd:   "+]",
	},
	Colors: ColorConfig{
		Add:    "\033[32m",
		Remove: "\033[31m",
		Modify: "\033[33m",
		Reset:  "\033[0m",
	},
}

// Flag describes a single config entry. This is used to detect if configurations are
// being set on an entry point that doesn't support them.
type Flag int

const (
	IgnoreWhitespace Flag = 1 << iota
	IgnoreCase
	Context
	ModifyThreshold
	LineNumbers
	Colorize
	Width
	Highlight
	Markers
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreWhitespace:
		return "promptdiff.IgnoreWhitespace"
	case IgnoreCase:
		return "promptdiff.IgnoreCase"
	case Context:
		return "promptdiff.Context"
	case ModifyThreshold:
		return "promptdiff.ModifyThreshold"
	case LineNumbers:
		return "render.LineNumbers"
	case Colorize:
		return "render.Color"
	case Width:
		return "render.Width"
	case Highlight:
		return "render.NoHighlight"
	case Markers:
		return "render.Markers"
	default:
		panic("never reached")
	}
}
