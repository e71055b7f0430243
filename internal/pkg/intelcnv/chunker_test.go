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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func chunkDir(t *testing.T) string {
	t.Helper()
	dir := path.Join(os.TempDir(), "intelcnv-"+t.Name())
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// readChunks returns the concatenated lines of all chunk files in order
func readChunks(t *testing.T, dir string, n int) (lines []string) {
	t.Helper()
	for i := 1; i <= n; i++ {
		b, err := os.ReadFile(path.Join(dir, fmt.Sprintf("%s%d.txt", ChunkFilePrefix, i)))
		if err != nil {
			t.Fatal(err)
		}
		lines = append(lines, strings.Split(strings.TrimRight(string(b), "\n"), "\n")...)
	}
	return
}

func TestExportChunksRoundTrip(t *testing.T) {
	dir := chunkDir(t)

	batch := Batch{
		{TypeDomain, "b.com"},
		{TypeDomain, "a.com"},
		{TypeDomain, "b.com"},
		{TypeIP, "1.1.1.1"},
		{TypeHashMD5, "d41d8cd98f00b204e9800998ecf8427e"},
		// urls and unknowns are not HX-eligible
		{TypeURL, "http://x"},
		{TypeUnknown, "whatever"},
	}
	uniq, n, err := ExportChunks(batch, dir, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(uniq) != 4 {
		t.Fatal("expected 4 unique eligible values, got", len(uniq))
	}
	if !sort.StringsAreSorted(uniq) {
		t.Error("expected returned values to be sorted")
	}
	if n != 2 {
		t.Fatal("expected 2 chunks, got", n)
	}
	got := readChunks(t, dir, n)
	if !reflect.DeepEqual(got, uniq) {
		t.Errorf("concatenated chunks %v do not reproduce the unique set %v", got, uniq)
	}
	for _, v := range got {
		if v == "http://x" || v == "whatever" {
			t.Error("ineligible value leaked into chunks:", v)
		}
	}
}

func TestExportChunksLarge(t *testing.T) {
	dir := chunkDir(t)

	batch := make(Batch, 0, 25000)
	for i := 0; i < 25000; i++ {
		batch = append(batch, Indicator{TypeHashMD5, fmt.Sprintf("%032x", i)})
	}
	uniq, n, err := ExportChunks(batch, dir, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if len(uniq) != 25000 {
		t.Fatal("expected 25000 unique values, got", len(uniq))
	}
	if n != 3 {
		t.Fatal("expected 3 chunks, got", n)
	}
	sizes := []int{}
	for i := 1; i <= n; i++ {
		b, err := os.ReadFile(path.Join(dir, fmt.Sprintf("%s%d.txt", ChunkFilePrefix, i)))
		if err != nil {
			t.Fatal(err)
		}
		sizes = append(sizes, len(strings.Split(strings.TrimRight(string(b), "\n"), "\n")))
	}
	if !reflect.DeepEqual(sizes, []int{10000, 10000, 5000}) {
		t.Error("unexpected chunk sizes:", sizes)
	}
	if got := readChunks(t, dir, n); !reflect.DeepEqual(got, uniq) {
		t.Error("concatenated chunks do not reproduce the unique set")
	}
}

func TestExportChunksReplace(t *testing.T) {
	dir := chunkDir(t)

	big := make(Batch, 0, 30)
	for i := 0; i < 30; i++ {
		big = append(big, Indicator{TypeDomain, fmt.Sprintf("host%02d.com", i)})
	}
	if _, _, err := ExportChunks(big, dir, 10); err != nil {
		t.Fatal(err)
	}

	// a smaller second run must fully replace the first set, not extend it
	small := Batch{{TypeDomain, "only.com"}}
	uniq, n, err := ExportChunks(small, dir, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || len(uniq) != 1 {
		t.Fatal("unexpected second run result:", n, uniq)
	}
	matches, err := filepath.Glob(path.Join(dir, ChunkFilePrefix+"*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatal("expected stale chunks to be removed, found", matches)
	}

	// re-running on identical input yields the identical file set
	if _, _, err := ExportChunks(small, dir, 10); err != nil {
		t.Fatal(err)
	}
	matches, _ = filepath.Glob(path.Join(dir, ChunkFilePrefix+"*.txt"))
	if len(matches) != 1 {
		t.Fatal("expected idempotent re-run, found", matches)
	}
}

func TestExportChunksEmpty(t *testing.T) {
	dir := chunkDir(t)

	if _, _, err := ExportChunks(Batch{{TypeDomain, "a.com"}}, dir, 10); err != nil {
		t.Fatal(err)
	}
	uniq, n, err := ExportChunks(Batch{{TypeURL, "http://x"}}, dir, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(uniq) != 0 || n != 0 {
		t.Fatal("expected zero chunks for a batch with no eligible types")
	}
	matches, _ := filepath.Glob(path.Join(dir, ChunkFilePrefix+"*.txt"))
	if len(matches) != 0 {
		t.Fatal("expected previous chunks to be removed on an empty run, found", matches)
	}
	// no leftover staging dirs either
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatal("expected empty output dir, found", entries)
	}
}
