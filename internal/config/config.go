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

// Package config reads the engine configuration from a toml file and
// makes the settings globally available. Command line flags of the
// binary may overwrite settings after Setup() has run.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// globally available config values
var (
	// ConfFile is the path to the configuration file. Needs to be set
	// before Setup() is called, otherwise the default is used.
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file
	Settings Conf

	initialized = false
)

// Conf is the structure of the configuration file
type Conf struct {
	Log   LogConf
	Store StoreConf
	Perft PerftConf
}

// StoreConf configures the persistent position score store
type StoreConf struct {
	// Path is the directory of the badger database
	Path string
	// InMemory keeps the store in memory only (used by tests)
	InMemory bool
}

// PerftConf configures the perft defaults of the binary
type PerftConf struct {
	// DefaultDepth is used when no -perft depth is given
	DefaultDepth int
}

// Setup reads the configuration file into Settings. Missing file or
// fields leave the defaults in place.
func Setup() {
	if initialized {
		return
	}

	// defaults
	Settings.Log.Level = "info"
	Settings.Log.TestLevel = "info"
	Settings.Store.Path = "./scorestore"
	Settings.Perft.DefaultDepth = 5

	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			fmt.Println("could not read config file:", err)
		}
	}

	setupLogLvl()

	initialized = true
}
