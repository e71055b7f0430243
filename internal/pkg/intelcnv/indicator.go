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

package intelcnv

import "strings"

// Type identifies the kind of a threat indicator
type Type string

const (
	TypeDomain  Type = "domain"
	TypeIP      Type = "ip_address"
	TypeURL     Type = "url"
	TypeHashMD5 Type = "hash_md5"
	// TypeUnknown marks rows whose type column holds anything else. They
	// stay in the batch but neither output path emits them.
	TypeUnknown Type = "unknown"
)

// Indicator is a single threat-intelligence atom
type Indicator struct {
	Type  Type
	Value string
}

// Batch holds the indicators loaded from one source file, in input order
type Batch []Indicator

// ParseType maps a raw type cell to the closed Type enum
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeDomain:
		return TypeDomain
	case TypeIP:
		return TypeIP
	case TypeURL:
		return TypeURL
	case TypeHashMD5:
		return TypeHashMD5
	}
	return TypeUnknown
}

// Values returns the values of all indicators in b whose type is one of
// types, preserving batch order
func (b Batch) Values(types ...Type) []string {
	result := []string{}
	for _, ind := range b {
		for _, t := range types {
			if ind.Type == t {
				result = append(result, ind.Value)
				break
			}
		}
	}
	return result
}
