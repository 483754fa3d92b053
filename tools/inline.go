/* Copyright 2018 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
)

// MaxInlineDepth limits how deeply inlined files can themselves
// inline other files.
var MaxInlineDepth = 8

var inlinePattern = regexp.MustCompile(`(?s)(.*?)(%inline *\("([^"]*)"\))`)

// Inline replaces '%inline("NAME")' with f(NAME).
//
// Replacements are not themselves expanded.  See InlineDir.
func Inline(bs []byte, f func(string) ([]byte, error)) ([]byte, error) {
	i := 0
	acc := make([]byte, 0, len(bs))
	for {
		part := inlinePattern.FindSubmatch(bs[i:])
		if part == nil {
			acc = append(acc, bs[i:]...)
			break
		}
		i += len(part[0])
		acc = append(acc, part[1]...)
		replacement, err := f(string(part[3]))
		if err != nil {
			return nil, err
		}
		util.Logf("inlining %s (%d bytes)", part[3], len(replacement))
		acc = append(acc, replacement...)
	}

	return acc, nil
}

// InlineDir is Inline with names resolved as files relative to the
// given directory.  An inlined file can inline other files, up to
// MaxInlineDepth.
func InlineDir(bs []byte, dir string) ([]byte, error) {
	var expand func(bs []byte, depth int) ([]byte, error)
	expand = func(bs []byte, depth int) ([]byte, error) {
		return Inline(bs, func(name string) ([]byte, error) {
			if MaxInlineDepth <= depth {
				return nil, errors.Newf("inlining %s: too deep (%d)", name, depth)
			}
			filename := filepath.Join(dir, name)
			got, err := os.ReadFile(filename)
			if err != nil {
				return nil, errors.Wrapf(err, "inlining %s", name)
			}
			return expand(got, depth+1)
		})
	}
	return expand(bs, 0)
}

// ReadFileWithInlines is a replacement for os.ReadFile that does
// InlineDir based on the directory of the filename.
func ReadFileWithInlines(filename string) ([]byte, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return InlineDir(bs, filepath.Dir(filename))
}

// ReadAllWithInlines is a replacement for io.ReadAll that does
// InlineDir based on the given directory.
func ReadAllWithInlines(in io.Reader, dir string) ([]byte, error) {
	bs, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return InlineDir(bs, dir)
}
