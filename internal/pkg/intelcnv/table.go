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
	"time"

	"github.com/defenxor/intelcnv/internal/pkg/shared/fs"
	"github.com/defenxor/intelcnv/internal/pkg/shared/str"

	"github.com/gocarina/gocsv/v2"
)

// AlignedRow is one row of the Splunk table output
type AlignedRow struct {
	Domain string `csv:"Domain"`
	IP     string `csv:"IP"`
	URL    string `csv:"URL"`
	Date   string `csv:"Date"`
}

// TableCounts reports per-group unique counts for diagnostics
type TableCounts struct {
	Domains int
	IPs     int
	URLs    int
	Rows    int
}

// swapped out in tests to pin the dated first row
var timeNow = time.Now

// BuildTable partitions batch into domain/ip/url groups, dedups and sorts
// each, and aligns them column-wise into one row per index. Row 0 carries
// the run date as yyyyMMdd. Empty groups pad with empty strings; a fully
// empty batch yields a single all-empty row, date included.
func BuildTable(batch Batch) (rows []AlignedRow, counts TableCounts) {
	domains := str.UniqSorted(batch.Values(TypeDomain))
	ips := str.UniqSorted(batch.Values(TypeIP))
	urls := str.UniqSorted(batch.Values(TypeURL))

	maxLen := len(domains)
	if len(ips) > maxLen {
		maxLen = len(ips)
	}
	if len(urls) > maxLen {
		maxLen = len(urls)
	}
	n := maxLen
	if n == 0 {
		n = 1
	}

	rows = make([]AlignedRow, n)
	for i := range rows {
		rows[i] = AlignedRow{
			Domain: valueAt(domains, i),
			IP:     valueAt(ips, i),
			URL:    valueAt(urls, i),
		}
	}
	if maxLen > 0 {
		rows[0].Date = timeNow().Format("20060102")
	}

	counts = TableCounts{
		Domains: len(domains),
		IPs:     len(ips),
		URLs:    len(urls),
		Rows:    len(rows),
	}
	return
}

func valueAt(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

// WriteTableCSV writes rows to path with the Domain,IP,URL,Date header
func WriteTableCSV(rows []AlignedRow, path string) error {
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return err
	}
	return fs.OverwriteFileBytes([]byte(out), path)
}
