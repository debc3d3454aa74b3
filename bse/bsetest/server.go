/*
 * server.go, part of goato.
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

//Package bsetest provides a fake Basis Set Exchange server for tests.
package bsetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

//Entry is one basis set served by a Server.
type Entry struct {
	Key      string //canonical name, used in the URL
	Basename string //name in the metadata, used for lookups
	Body     []byte //the document
}

//Server is an httptest.Server answering the two BSE endpoints the bse package uses.
type Server struct {
	*httptest.Server

	//Delay is added to every basis set request.
	Delay time.Duration

	mu             sync.Mutex
	entries        map[string]Entry
	order          []string
	basisStatus    map[string]int
	metadataStatus int
	requests       map[string]int

	inFlight    atomic.Int64
	maxInFlight atomic.Int64
}

//NewServer starts a server with the given entries. Close it when done.
func NewServer(entries ...Entry) *Server {
	s := &Server{
		entries:     make(map[string]Entry),
		basisStatus: make(map[string]int),
		requests:    make(map[string]int),
	}
	for _, e := range entries {
		s.entries[e.Key] = e
		s.order = append(s.order, e.Key)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

//FailMetadata makes the metadata endpoint answer with status. A status of
//0 restores normal behavior.
func (s *Server) FailMetadata(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadataStatus = status
}

//FailBasis makes requests for the basis set key answer with status.
func (s *Server) FailBasis(key string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basisStatus[key] = status
}

//Requests returns how many requests were received for path.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

//TotalRequests returns the number of requests received so far.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.requests {
		n += v
	}
	return n
}

//MaxInFlight returns the largest number of basis set requests served at the same time.
func (s *Server) MaxInFlight() int {
	return int(s.maxInFlight.Load())
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests[r.URL.Path]++
	s.mu.Unlock()
	switch {
	case r.URL.Path == "/api/metadata/":
		s.metadata(w)
	case strings.HasPrefix(r.URL.Path, "/api/basis/") && strings.HasSuffix(r.URL.Path, "/format/json/"):
		key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/basis/"), "/format/json/")
		s.basis(w, key)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) metadata(w http.ResponseWriter) {
	s.mu.Lock()
	status := s.metadataStatus
	catalog := make(map[string]any, len(s.entries))
	for _, k := range s.order {
		e := s.entries[k]
		catalog[k] = map[string]any{
			"auxiliaries":    map[string]any{},
			"basename":       e.Basename,
			"description":    e.Basename + " basis",
			"display_name":   e.Basename,
			"family":         "test",
			"function_types": []string{"gto"},
			"latest_version": "1",
			"notes_exist":    true,
			"other_names":    []string{},
			"relpath":        "",
			"role":           "orbital",
			"tags":           []string{},
			"versions": map[string]any{
				"1": map[string]any{
					"elements":     []string{"1"},
					"file_relpath": k + ".1.table.json",
					"revdate":      "June 19, 2018",
					"revdesc":      "Test data",
				},
			},
		}
	}
	s.mu.Unlock()
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog)
}

func (s *Server) basis(w http.ResponseWriter, key string) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxInFlight.Load()
		if n <= m || s.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	s.mu.Lock()
	e, ok := s.entries[key]
	status := s.basisStatus[key]
	s.mu.Unlock()
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(e.Body)
}
