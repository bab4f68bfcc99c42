/*
 * Chess-Engine - a bitboard chess engine core in GO
 *
 * MIT License
 *
 * Copyright (c) 2025 Amit Sarussi
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// LogConf configures the log levels of the engine
type LogConf struct {
	// Level is the log level of the standard logger
	// (critical|error|warning|notice|info|debug)
	Level string
	// TestLevel is the log level of the test logger
	TestLevel string
}

// log levels as used by the go-logging package
const (
	logLevelCritical = 0
	logLevelError    = 1
	logLevelWarning  = 2
	logLevelNotice   = 3
	logLevelInfo     = 4
	logLevelDebug    = 5
)

// LogLevels maps the log level names of the config file to the levels
// of the go-logging package
var LogLevels = map[string]int{
	"critical": logLevelCritical,
	"error":    logLevelError,
	"warning":  logLevelWarning,
	"notice":   logLevelNotice,
	"info":     logLevelInfo,
	"debug":    logLevelDebug,
}

var (
	// LogLevel is the currently active level of the standard logger
	LogLevel = logLevelInfo

	// TestLogLevel is the currently active level of the test logger
	TestLogLevel = logLevelInfo
)

// setupLogLvl translates the configured level names into levels after
// the configuration file has been read
func setupLogLvl() {
	if lvl, found := LogLevels[Settings.Log.Level]; found {
		LogLevel = lvl
	}
	if lvl, found := LogLevels[Settings.Log.TestLevel]; found {
		TestLogLevel = lvl
	}
}
