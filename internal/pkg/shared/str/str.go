// Copyright (c) 2018 PT Defender Nusa Semesta and contributors, All rights reserved.
//
// This file is part of Intelcnv.
//
// Intelcnv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation version 3 of the License.
//
// Intelcnv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Intelcnv. If not, see <https://www.gnu.org/licenses/>.

package str

import (
	"sort"
)

// RemoveDuplicates remove duplicates from elements, keeping the first
// occurrence and preserving the original order
func RemoveDuplicates(elements []string) []string {
	encountered := map[string]bool{}
	result := []string{}
	for _, v := range elements {
		if encountered[v] {
			continue
		}
		encountered[v] = true
		result = append(result, v)
	}
	return result
}

// UniqSorted remove duplicates from elements and sort the result in
// ascending byte order
func UniqSorted(elements []string) []string {
	result := RemoveDuplicates(elements)
	sort.Strings(result)
	return result
}
