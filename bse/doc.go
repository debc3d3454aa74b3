/*
 * doc.go, part of goato.
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

//Package bse talks to the Basis Set Exchange (https://www.basissetexchange.org)
//and keeps a local mirror of its basis sets.
//
//The first time a basis set is requested, the whole catalog is downloaded
//into the data directory ($ATO_DATA_PATH, or $HOME/.ato_rs/data/ if unset):
//the metadata first, from which a name index is built, and then every basis
//set document, with up to 30 requests in flight. Documents that fail to
//download are logged and skipped. Later requests only read from disk.
//UpdateData downloads everything again.
package bse
