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
	"path/filepath"
	"strings"

	"github.com/defenxor/intelcnv/internal/pkg/shared/fs"
	log "github.com/defenxor/intelcnv/internal/pkg/shared/logger"

	"github.com/extrame/xls"
	"github.com/gocarina/gocsv/v2"
	"github.com/xuri/excelize/v2"
)

// parseableExts are the source formats the loader can read
var parseableExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
	".xls":  true,
	".csv":  true,
}

type indicatorRecord struct {
	Type      string `csv:"type"`
	Indicator string `csv:"indicator"`
}

// LoadIndicators reads the source spreadsheet and returns all indicators
// found across its worksheets, in worksheet then row order
func LoadIndicators(path string) (batch Batch, err error) {
	if !fs.FileExist(path) {
		return nil, InvalidPathError{Path: path}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !parseableExts[ext] {
		return nil, UnsupportedFormatError{Ext: ext}
	}
	switch ext {
	case ".csv":
		return loadCSV(path)
	case ".xls":
		return loadLegacyWorkbook(path)
	}
	return loadWorkbook(path)
}

func loadWorkbook(path string) (batch Batch, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, InvalidPathError{Path: path}
	}
	defer f.Close()

	batch = Batch{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}
		batch = appendSheet(batch, sheet, rows)
	}
	return batch, nil
}

// loadLegacyWorkbook handles the old BIFF container
func loadLegacyWorkbook(path string) (batch Batch, err error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, InvalidPathError{Path: path}
	}

	batch = Batch{}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		rows := [][]string{}
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		batch = appendSheet(batch, sheet.Name, rows)
	}
	return batch, nil
}

func loadCSV(path string) (batch Batch, err error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return nil, InvalidPathError{Path: path}
	}
	var records []indicatorRecord
	if err = gocsv.UnmarshalBytes(byteValue, &records); err != nil {
		return nil, err
	}
	batch = Batch{}
	for _, r := range records {
		if r.Indicator == "" {
			continue
		}
		batch = append(batch, Indicator{Type: ParseType(r.Type), Value: r.Indicator})
	}
	return batch, nil
}

// appendSheet interprets one worksheet's rows against its header row and
// appends the indicators found to batch
func appendSheet(batch Batch, sheet string, rows [][]string) Batch {
	if len(rows) == 0 {
		return batch
	}
	typeCol, indCol, ok := findColumns(rows[0])
	if !ok {
		log.Warn(log.M{Msg: "Skipping sheet " + sheet + ": no type/indicator header"})
		return batch
	}
	for _, row := range rows[1:] {
		if indCol >= len(row) || row[indCol] == "" {
			continue
		}
		typ := ""
		if typeCol < len(row) {
			typ = row[typeCol]
		}
		batch = append(batch, Indicator{Type: ParseType(typ), Value: row[indCol]})
	}
	return batch
}

// findColumns locates the type and indicator columns in a header row
func findColumns(header []string) (typeCol, indCol int, ok bool) {
	typeCol, indCol = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "type":
			if typeCol == -1 {
				typeCol = i
			}
		case "indicator":
			if indCol == -1 {
				indCol = i
			}
		}
	}
	ok = typeCol != -1 && indCol != -1
	return
}
