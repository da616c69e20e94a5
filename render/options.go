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

package render

import (
	"github.com/promptdiff/promptdiff/internal/config"
	"github.com/promptdiff/promptdiff/render/color"
)

// Option configures the behavior of the render functions.
type Option = config.Option

// LineNumbers prefixes every rendered line with its 1-based position in the old
// and/or new document.
func LineNumbers() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LineNumbers = true
		return config.LineNumbers
	}
}

// Color enables ANSI SGR coloring of terminal output. Without further options,
// additions are green, removals red, and modifications yellow; pass [color] options
// to customize:
//
//	render.Inline(result, render.Color(color.Adds(1, 32)))
func Color(opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Colorize = true
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Colorize
	}
}

// Width sets the column width for [SideBySide]. The default is 40.
func Width(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(1, n)
		return config.Width
	}
}

// NoHighlight disables the character-level highlighting of modified lines.
// Highlighting is enabled by default.
func NoHighlight() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Highlight = false
		return config.Highlight
	}
}

// Markers overrides the bracket markers wrapped around removed and inserted
// characters of a modified line pair. The defaults are "[-x-]" and "[+x+]".
func Markers(deleteStart, deleteEnd, insertStart, insertEnd string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Markers = config.MarkerSet{
			DeleteStart: deleteStart,
			DeleteEnd:   deleteEnd,
			InsertStart: insertStart,
			InsertEnd:   insertEnd,
		}
		return config.Markers
	}
}
