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

import (
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/defenxor/intelcnv/internal/pkg/shared/fs"
	"github.com/defenxor/intelcnv/internal/pkg/shared/str"
)

const (
	// ChunkFilePrefix is the naming convention for HX chunk files
	ChunkFilePrefix = "hx_indicators_"
	chunkFileExt    = ".txt"
	chunkFileGlob   = ChunkFilePrefix + "*" + chunkFileExt

	// DefaultChunkSize is the max indicator count per chunk file
	DefaultChunkSize = 10000
)

// ExportChunks filters batch to the HX-eligible types (hash_md5,
// ip_address, domain), dedups and sorts the values, and writes them into
// dir as numbered chunk files of at most maxChunkSize lines each.
// Previously produced chunk files in dir are replaced: new chunks are
// staged in a temporary directory first, then the old set is removed and
// the staged files moved in.
func ExportChunks(batch Batch, dir string, maxChunkSize int) (uniq []string, nChunks int, err error) {
	if maxChunkSize < 1 {
		maxChunkSize = DefaultChunkSize
	}
	uniq = str.UniqSorted(batch.Values(TypeHashMD5, TypeIP, TypeDomain))
	nChunks = (len(uniq) + maxChunkSize - 1) / maxChunkSize

	if err = fs.EnsureDir(dir); err != nil {
		return
	}
	staging, err := os.MkdirTemp(dir, ".staging")
	if err != nil {
		return
	}
	defer os.RemoveAll(staging)

	for i := 0; i < nChunks; i++ {
		lo := i * maxChunkSize
		hi := lo + maxChunkSize
		if hi > len(uniq) {
			hi = len(uniq)
		}
		content := strings.Join(uniq[lo:hi], "\n")
		if err = fs.OverwriteFile(content, path.Join(staging, chunkFileName(i+1))); err != nil {
			return
		}
	}

	// the window between remove and rename is the accepted non-atomic part
	if err = fs.RemoveGlob(dir, chunkFileGlob); err != nil {
		return
	}
	for i := 0; i < nChunks; i++ {
		name := chunkFileName(i + 1)
		if err = os.Rename(path.Join(staging, name), path.Join(dir, name)); err != nil {
			return
		}
	}
	return
}

func chunkFileName(n int) string {
	return ChunkFilePrefix + strconv.Itoa(n) + chunkFileExt
}
