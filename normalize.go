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

import (
	"strings"

	"github.com/promptdiff/promptdiff/internal/config"
)

// normalize derives the comparison key for a line. Keys are only ever used for
// equality checks; the original text is what ends up in [Line], which is how the
// insensitivity options avoid corrupting displayed output.
func normalize(line string, cfg config.Config) string {
	if cfg.IgnoreWhitespace {
		line = strings.Join(strings.Fields(line), " ")
	}
	if cfg.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}
