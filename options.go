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

package promptdiff

import "github.com/promptdiff/promptdiff/internal/config"

// Option configures the behavior of [Diff].
type Option = config.Option

// IgnoreWhitespace collapses every run of whitespace to a single space and trims both
// ends of each line before comparing. Displayed text is never altered.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// IgnoreCase case-folds lines before comparing. Displayed text is never altered.
func IgnoreCase() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// Context sets the number of unchanged lines to keep around changes when renderers
// window their output. The renderers in this module currently always show the full
// document, so the value is accepted and carried but not observed. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// ModifyThreshold sets the similarity above which a line pair that is off the common
// backbone is reported as a single modification instead of a removal and an addition.
// The value is clamped to [0, 1].
//
// The default is 0.3, an empirical cutoff that keeps reworded sentences together
// without pairing unrelated lines.
func ModifyThreshold(v float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ModifyThreshold = min(1, max(0, v))
		return config.ModifyThreshold
	}
}
