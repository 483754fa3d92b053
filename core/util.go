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

package core

import (
	"sort"
)

// Symbols splits a string into one Symbol per rune.
func Symbols(s string) []Symbol {
	acc := make([]Symbol, 0, len(s))
	for _, r := range s {
		acc = append(acc, Symbol(r))
	}
	return acc
}

func sortSymbols(as []Symbol) {
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
}
