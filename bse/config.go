/*
 * config.go, part of goato.
 *
 *
 * Copyright 2026 The goato authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package bse

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	//EnvDataPath is the environment variable that overrides the data directory.
	EnvDataPath = "ATO_DATA_PATH"
	//EnvBaseURL overrides the BSE base URL.
	EnvBaseURL = "ATO_BSE_URL"
	//EnvWorkers sets the number of concurrent downloads.
	EnvWorkers = "ATO_DOWNLOAD_WORKERS"

	//DefaultDataPath is the data directory, relative to the user's home,
	//used when EnvDataPath is not set.
	DefaultDataPath = ".ato_rs/data/"
	BaseURL         = "https://www.basissetexchange.org/"
	//MaxWorkers is the maximum number of in-flight requests when downloading basis sets.
	MaxWorkers = 30
)

//Config holds the settings of an Exchange.
type Config struct {
	DataRoot string //the cache root, i.e. DATA_ROOT.
	BaseURL  string
	Workers  int //concurrent downloads, between 1 and MaxWorkers
}

//LoadConfig builds a Config from the environment. A .env file in the
//working directory is read first, but it never overrides variables
//already set.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	root, err := dataRoot()
	if err != nil {
		return Config{}, errDecorate(err, "LoadConfig")
	}
	cfg := Config{
		DataRoot: root,
		BaseURL:  firstNonEmpty(strings.TrimSpace(os.Getenv(EnvBaseURL)), BaseURL),
		Workers:  MaxWorkers,
	}
	if w := strings.TrimSpace(os.Getenv(EnvWorkers)); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return Config{}, newError(ErrConfig, "invalid "+EnvWorkers+" value "+strconv.Quote(w), "", "LoadConfig", err)
		}
		cfg.Workers = n
	}
	cfg.Workers = clampWorkers(cfg.Workers)
	return cfg, nil
}

func clampWorkers(n int) int {
	if n <= 0 || n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
