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

// InvalidPathError means the source file is missing or unreadable
type InvalidPathError struct {
	Path string
}

func (e InvalidPathError) Error() string {
	return "cannot read source file " + e.Path
}

// UnsupportedFormatError means the source file extension is not a
// spreadsheet format this tool can parse
type UnsupportedFormatError struct {
	Ext string
}

func (e UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "source file has no extension"
	}
	return "unsupported source format " + e.Ext
}

// InvalidOutputFormatError means the table output name lacks the required
// .csv extension
type InvalidOutputFormatError struct {
	Name string
}

func (e InvalidOutputFormatError) Error() string {
	return "table output " + e.Name + " must end in .csv"
}
