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
	"strconv"
	"strings"

	log "github.com/defenxor/intelcnv/internal/pkg/shared/logger"
	"github.com/defenxor/intelcnv/internal/pkg/shared/str"
)

const (
	// DefaultTableOut is the default Splunk table filename
	DefaultTableOut = "MSOC 2 Week.csv"
	// DefaultChunkDir is the default HX chunk output directory
	DefaultChunkDir = "hx"
)

// Options control a single conversion run
type Options struct {
	Source       string
	TableOut     string
	ChunkDir     string
	TableOnly    bool
	ChunkOnly    bool
	Quiet        bool
	MaxChunkSize int
}

// Result carries the diagnostics of a conversion run
type Result struct {
	Table          TableCounts
	ChunkUniq      int
	ChunkCount     int
	TotalProcessed int
}

// Convert runs the requested output paths over one source file. When
// neither TableOnly nor ChunkOnly is set, both paths run.
func Convert(opt Options) (res Result, err error) {
	log.SetQuiet(opt.Quiet)

	runTable := opt.TableOnly || !opt.ChunkOnly
	runChunk := opt.ChunkOnly || !opt.TableOnly

	if opt.TableOut == "" {
		opt.TableOut = DefaultTableOut
	}
	if opt.ChunkDir == "" {
		opt.ChunkDir = DefaultChunkDir
	}
	if opt.MaxChunkSize < 1 {
		opt.MaxChunkSize = DefaultChunkSize
	}

	// output name check happens before the source is even opened
	if runTable && !strings.HasSuffix(strings.ToLower(opt.TableOut), ".csv") {
		return res, InvalidOutputFormatError{Name: opt.TableOut}
	}

	log.InfoMsg("Converting " + opt.Source)
	batch, err := LoadIndicators(opt.Source)
	if err != nil {
		return res, err
	}
	log.Info(log.M{Msg: "Loaded indicators", File: opt.Source, Num: len(batch)})

	if runTable {
		rows, counts := BuildTable(batch)
		if err = WriteTableCSV(rows, opt.TableOut); err != nil {
			return res, err
		}
		res.Table = counts
		log.Info(log.M{Msg: "Splunk table written (" +
			strconv.Itoa(counts.Domains) + " domains, " +
			strconv.Itoa(counts.IPs) + " IPs, " +
			strconv.Itoa(counts.URLs) + " URLs)",
			File: opt.TableOut, Num: counts.Rows})
	}

	if runChunk {
		uniq, nChunks, err := ExportChunks(batch, opt.ChunkDir, opt.MaxChunkSize)
		if err != nil {
			return res, err
		}
		res.ChunkUniq = len(uniq)
		res.ChunkCount = nChunks
		log.Info(log.M{Msg: "HX chunks written to " + opt.ChunkDir, Num: nChunks})
	}

	// the same accounting the tool has always reported: with both paths it
	// is table rows plus the hash-only subset, since domain/ip/url values
	// are already in the table count
	switch {
	case runTable && runChunk:
		res.TotalProcessed = res.Table.Rows +
			len(str.UniqSorted(batch.Values(TypeHashMD5)))
	case runChunk:
		res.TotalProcessed = res.ChunkUniq
	default:
		res.TotalProcessed = res.Table.Rows
	}
	log.Info(log.M{Msg: "Total unique indicators processed", Num: res.TotalProcessed})

	return res, nil
}
