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

package logger

import (
	"bufio"
	"bytes"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zlog *zap.Logger
var enableDebugMessage bool
var quiet bool

var enc zapcore.Encoder
var wrt *bufio.Writer
var buffer bytes.Buffer
var zLock = sync.RWMutex{}

// TestMode is a flag for testing mode
var TestMode bool

// Setup initialize logger
func Setup(dbg bool) (err error) {
	zLock.Lock()
	defer zLock.Unlock()
	enableDebugMessage = dbg
	if enableDebugMessage {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
		zlog, err = cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	} else {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableCaller = true
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		zlog, err = cfg.Build()
	}
	if err == nil {
		zlog.Sync()
	}
	return
}

// SetQuiet suppress info and debug messages, errors and warnings still go out
func SetQuiet(q bool) {
	zLock.Lock()
	defer zLock.Unlock()
	quiet = q
}

// M defines the type for log messages
type M struct {
	Msg  string // the message
	File string // source or output file involved
	Num  int    // indicator or chunk count
}

//Info logs with info level
func Info(m M) {
	if quiet {
		return
	}
	if TestMode {
		zLock.Lock()
		defer zLock.Unlock()
	}

	if m.File == "" && m.Num == 0 {
		zlog.Info(m.Msg)
		return
	}
	if m.File == "" && m.Num != 0 {
		zlog.Info(m.Msg, zap.Int("count", m.Num))
		return
	}
	if m.File != "" && m.Num == 0 {
		zlog.Info(m.Msg, zap.String("file", m.File))
		return
	}
	zlog.Info(m.Msg, zap.String("file", m.File), zap.Int("count", m.Num))
}

func InfoMsg(msg string) {
	Info(M{Msg: msg})
}

//Warn logs with warn level
func Warn(m M) {
	if TestMode {
		zLock.Lock()
		defer zLock.Unlock()
	}

	if m.File == "" && m.Num == 0 {
		zlog.Warn(m.Msg)
		return
	}
	if m.File == "" && m.Num != 0 {
		zlog.Warn(m.Msg, zap.Int("count", m.Num))
		return
	}
	if m.File != "" && m.Num == 0 {
		zlog.Warn(m.Msg, zap.String("file", m.File))
		return
	}
	zlog.Warn(m.Msg, zap.String("file", m.File), zap.Int("count", m.Num))
}

//Debug logs with debug level
func Debug(m M) {
	if !enableDebugMessage || quiet {
		return
	}
	if TestMode {
		zLock.Lock()
		defer zLock.Unlock()
	}

	if m.File == "" && m.Num == 0 {
		zlog.Debug(m.Msg)
		return
	}
	if m.File == "" && m.Num != 0 {
		zlog.Debug(m.Msg, zap.Int("count", m.Num))
		return
	}
	if m.File != "" && m.Num == 0 {
		zlog.Debug(m.Msg, zap.String("file", m.File))
		return
	}
	zlog.Debug(m.Msg, zap.String("file", m.File), zap.Int("count", m.Num))
}

//Error logs with error level
func Error(m M) {
	if TestMode {
		zLock.Lock()
		defer zLock.Unlock()
	}

	if m.File == "" && m.Num == 0 {
		zlog.Error(m.Msg)
		return
	}
	if m.File == "" && m.Num != 0 {
		zlog.Error(m.Msg, zap.Int("count", m.Num))
		return
	}
	if m.File != "" && m.Num == 0 {
		zlog.Error(m.Msg, zap.String("file", m.File))
		return
	}
	zlog.Error(m.Msg, zap.String("file", m.File), zap.Int("count", m.Num))
}

// CaptureZapOutput returns output of zap logger so that it can be used
// in tests
func CaptureZapOutput(funcToRun func()) string {
	zLock.Lock()
	buffer.Reset()
	zLock.Unlock()
	funcToRun()
	zLock.Lock()
	wrt.Flush()
	zLock.Unlock()
	return buffer.String()
}

// EnableTestingMode set zap for testing, should be called before CaptureZapOutput
func EnableTestingMode() {
	TestMode = true
	enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	wrt = bufio.NewWriter(&buffer)
	zlog = zap.New(
		zapcore.NewCore(enc, zapcore.AddSync(wrt), zapcore.DebugLevel))
}
