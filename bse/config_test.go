/*
 * config_test.go, part of goato.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(Te *testing.T) {
	Te.Setenv(EnvDataPath, "/tmp/atotest")
	Te.Setenv(EnvBaseURL, "")
	Te.Setenv(EnvWorkers, "")
	cfg, err := LoadConfig()
	require.NoError(Te, err)
	assert.Equal(Te, "/tmp/atotest", cfg.DataRoot)
	assert.Equal(Te, BaseURL, cfg.BaseURL)
	assert.Equal(Te, MaxWorkers, cfg.Workers)
}

func TestLoadConfigOverrides(Te *testing.T) {
	Te.Setenv(EnvDataPath, "/tmp/atotest")
	Te.Setenv(EnvBaseURL, " http://localhost:8080/ ")
	Te.Setenv(EnvWorkers, "4")
	cfg, err := LoadConfig()
	require.NoError(Te, err)
	assert.Equal(Te, "http://localhost:8080/", cfg.BaseURL)
	assert.Equal(Te, 4, cfg.Workers)

	Te.Setenv(EnvWorkers, "100")
	cfg, err = LoadConfig()
	require.NoError(Te, err)
	assert.Equal(Te, MaxWorkers, cfg.Workers, "never more than MaxWorkers")

	Te.Setenv(EnvWorkers, "many")
	_, err = LoadConfig()
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrConfig))
}

func TestNewExchangeDefaults(Te *testing.T) {
	x := NewExchange(Config{DataRoot: "/tmp/atotest", BaseURL: "http://example.org"})
	assert.Equal(Te, "http://example.org/api/metadata/", x.metadataURL())
	assert.Equal(Te, "http://example.org/api/basis/6-31g_st_/format/json/?", x.basisURL("6-31g_st_"))
	assert.Equal(Te, MaxWorkers, x.workers)
	assert.Equal(Te, "/tmp/atotest", x.DataDir().Root())

	x = NewExchange(Config{DataRoot: "/tmp/atotest"})
	assert.Equal(Te, BaseURL+"api/metadata/", x.metadataURL())
}
