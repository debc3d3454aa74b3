/*
 * client.go, part of goato.
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
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	metadataEndpoint = "api/metadata/"
	basisEndpoint    = "api/basis/"
	basisSuffix      = "/format/json/?"
	userAgent        = "goato (+https://github.com/rmera/goato)"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(os.Stderr, "bse: ", log.LstdFlags))
}

//SetLogger replaces the package logger, used by every Exchange
//without a logger of its own. A nil l discards the output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

//Bootstraps of the same data directory within one process are collapsed
//into a single run, and so are refreshes. running counts the populate
//calls in progress per root.
var (
	bootstrap singleflight.Group
	runningMu sync.Mutex
	running   = make(map[string]int)
)

func markRunning(root string) (done func()) {
	runningMu.Lock()
	running[root]++
	runningMu.Unlock()
	return func() {
		runningMu.Lock()
		if running[root]--; running[root] <= 0 {
			delete(running, root)
		}
		runningMu.Unlock()
	}
}

func isRunning(root string) bool {
	runningMu.Lock()
	defer runningMu.Unlock()
	return running[root] > 0
}

func refreshKey(root string) string { return "update:" + root }

//Exchange downloads basis sets from the Basis Set Exchange into a DataDir
//and reads them back.
type Exchange struct {
	dir     *DataDir
	baseURL string
	workers int
	client  *http.Client
	log     *log.Logger
}

//Option configures an Exchange.
type Option func(*Exchange)

//WithHTTPClient makes the Exchange use c for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(x *Exchange) { x.client = c }
}

//WithLogger gives the Exchange its own logger.
func WithLogger(l *log.Logger) Option {
	return func(x *Exchange) { x.log = l }
}

//NewExchange returns an Exchange for the given configuration. Empty
//fields in cfg take their defaults, except DataRoot.
func NewExchange(cfg Config, opts ...Option) *Exchange {
	base := firstNonEmpty(strings.TrimSpace(cfg.BaseURL), BaseURL)
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	x := &Exchange{
		dir:     NewDataDir(cfg.DataRoot),
		baseURL: base,
		workers: clampWorkers(cfg.Workers),
		client:  &http.Client{Transport: gzhttp.Transport(http.DefaultTransport)},
	}
	for _, o := range opts {
		o(x)
	}
	return x
}

//DataDir returns the data directory the Exchange works on.
func (x *Exchange) DataDir() *DataDir { return x.dir }

func (x *Exchange) logf(format string, v ...any) {
	l := x.log
	if l == nil {
		l = logger.Load()
	}
	l.Printf(format, v...)
}

func (x *Exchange) metadataURL() string {
	return x.baseURL + metadataEndpoint
}

func (x *Exchange) basisURL(name string) string {
	return x.baseURL + basisEndpoint + url.PathEscape(name) + basisSuffix
}

//get fetches u and returns the body. Transport errors and
//non-2xx answers are ErrNetwork.
func (x *Exchange) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, newError(ErrNetwork, "can't build request", u, "get", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	resp, err := x.client.Do(req)
	if err != nil {
		return nil, newError(ErrNetwork, "request failed", u, "get", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, newError(ErrNetwork, "unexpected status "+resp.Status, u, "get", nil)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(ErrNetwork, "can't read response body", u, "get", err)
	}
	return body, nil
}

//RequestNames downloads the catalog and builds the name index from it.
func (x *Exchange) RequestNames(ctx context.Context) (Index, error) {
	body, err := x.get(ctx, x.metadataURL())
	if err != nil {
		return nil, errDecorate(err, "RequestNames")
	}
	catalog, err := ParseMetadata(body)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.filename = x.metadataURL()
		}
		return nil, errDecorate(err, "RequestNames")
	}
	return NewIndex(catalog), nil
}

//DownloadMetadata downloads the catalog and writes the name index, both as
//JSON and in binary form. The binary file is written last, as its presence
//marks the mirror as usable. The data directory must exist.
func (x *Exchange) DownloadMetadata(ctx context.Context) (Index, error) {
	idx, err := x.RequestNames(ctx)
	if err != nil {
		return nil, errDecorate(err, "DownloadMetadata")
	}
	if err := WriteIndexJSON(x.dir.Path(JSONIndexFile), idx); err != nil {
		return nil, errDecorate(err, "DownloadMetadata")
	}
	if err := WriteIndex(x.dir.Path(BinaryIndexFile), idx); err != nil {
		return nil, errDecorate(err, "DownloadMetadata")
	}
	return idx, nil
}

//DownloadReport summarizes a DownloadBasisSets run.
type DownloadReport struct {
	Requested int
	Written   int
	Failed    []string //canonical names that could not be downloaded or written
}

func (r DownloadReport) String() string {
	return fmt.Sprintf("%d/%d basis sets written, %d failed", r.Written, r.Requested, len(r.Failed))
}

//DownloadBasisSets downloads the document for every canonical name in idx
//into the data directory, with at most as many requests in flight as the
//Exchange has workers. A failed download is logged and skipped; it never
//stops the others.
func (x *Exchange) DownloadBasisSets(ctx context.Context, idx Index) DownloadReport {
	names := idx.Canonical()
	report := DownloadReport{Requested: len(names)}
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(x.workers)
	for _, name := range names {
		g.Go(func() error {
			err := x.downloadBasis(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				x.logf("ERROR downloading %s: %v", name, err)
				report.Failed = append(report.Failed, name)
				return nil
			}
			report.Written++
			return nil
		})
	}
	g.Wait()
	return report
}

func (x *Exchange) downloadBasis(ctx context.Context, name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return newError(ErrSchema, "invalid basis set name "+fmt.Sprintf("%q", name), "", "downloadBasis", nil)
	}
	u := x.basisURL(name)
	body, err := x.get(ctx, u)
	if err != nil {
		return errDecorate(err, "downloadBasis")
	}
	if len(body) == 0 {
		return newError(ErrNetwork, "empty response body", u, "downloadBasis", nil)
	}
	path := x.dir.BasisFile(name)
	if err := writeFileAtomic(path, body); err != nil {
		return newError(ErrIO, "can't write basis set", path, "downloadBasis", err)
	}
	return nil
}

//populate creates the data directory and fills it. Metadata must be written
//before any document is requested.
func (x *Exchange) populate(ctx context.Context) error {
	defer markRunning(x.dir.Root())()
	if err := x.dir.Create(); err != nil {
		return errDecorate(err, "populate")
	}
	idx, err := x.DownloadMetadata(ctx)
	if err != nil {
		return errDecorate(err, "populate")
	}
	report := x.DownloadBasisSets(ctx, idx)
	x.logf("%s in %s", report, x.dir.Root())
	return nil
}

//EnsureDataExist downloads the whole catalog into the data directory,
//unless a mirror is already there. A mirror being refreshed by UpdateData
//counts as existing: its files are replaced one by one, atomically.
//
//Concurrent callers on the same data directory share one download, which
//is not canceled when the context of the caller that started it is.
func (x *Exchange) EnsureDataExist(ctx context.Context) (DataState, error) {
	ok, err := x.dir.Exists()
	if err != nil {
		return Downloaded, errDecorate(err, "EnsureDataExist")
	}
	//busy must be checked after Exists: a run in progress marks itself before writing anything.
	if ok && !isRunning(x.dir.Root()) {
		return ExistsAlready, nil
	}
	shared := context.WithoutCancel(ctx)
	v, err, _ := bootstrap.Do(x.dir.Root(), func() (any, error) {
		if ok, err := x.dir.Exists(); err == nil && ok {
			return ExistsAlready, nil
		}
		x.logf("no basis set data in %s, downloading from %s", x.dir.Root(), x.baseURL)
		return Downloaded, x.populate(shared)
	})
	if err != nil {
		return Downloaded, err //shared with other callers, not decorated.
	}
	state, ok := v.(DataState)
	if !ok {
		return Downloaded, newError(ErrIO, fmt.Sprintf("unexpected bootstrap result %v", v), x.dir.Root(), "EnsureDataExist", nil)
	}
	return state, nil
}

//UpdateData downloads the metadata and every basis set again, whether
//a mirror exists or not. Readers are not blocked meanwhile. Concurrent
//refreshes of the same data directory share one run, like EnsureDataExist.
func (x *Exchange) UpdateData(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)
	_, err, _ := bootstrap.Do(refreshKey(x.dir.Root()), func() (any, error) {
		return Downloaded, x.populate(shared)
	})
	return err
}

//ReadNames reads the name index from the data directory.
func (x *Exchange) ReadNames() (Index, error) {
	idx, err := ReadIndex(x.dir.Path(BinaryIndexFile))
	if err != nil {
		return nil, errDecorate(err, "ReadNames")
	}
	return idx, nil
}

//ReadBasis returns the document for the basis set called name (case-insensitive),
//downloading the catalog first if needed.
func (x *Exchange) ReadBasis(ctx context.Context, name string) (*Document, error) {
	if _, err := x.EnsureDataExist(ctx); err != nil {
		return nil, err
	}
	idx, err := x.ReadNames()
	if err != nil {
		return nil, errDecorate(err, "ReadBasis")
	}
	canonical, ok := idx.Lookup(name)
	if !ok {
		return nil, newError(ErrBasisSetNotFound, "the basis set "+fmt.Sprintf("%q", name)+" could not be found", "", "ReadBasis", nil)
	}
	path := x.dir.BasisFile(canonical)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, newError(ErrBasisSetNotFound, "the basis set "+fmt.Sprintf("%q", name)+" is in the index but was not downloaded", path, "ReadBasis", err)
	}
	if err != nil {
		return nil, newError(ErrIO, "unable to read basis set file", path, "ReadBasis", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.filename = path
		}
		return nil, errDecorate(err, "ReadBasis")
	}
	return doc, nil
}

func defaultExchange() (*Exchange, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewExchange(cfg), nil
}

//EnsureDataExist makes sure the data directory given by the environment holds
//a mirror of the catalog, downloading it if needed.
func EnsureDataExist() (DataState, error) {
	x, err := defaultExchange()
	if err != nil {
		return Downloaded, errDecorate(err, "EnsureDataExist")
	}
	return x.EnsureDataExist(context.Background())
}

//UpdateData downloads the catalog again into the data directory given by the environment.
func UpdateData() error {
	x, err := defaultExchange()
	if err != nil {
		return errDecorate(err, "UpdateData")
	}
	return x.UpdateData(context.Background())
}

//ReadBasis reads the basis set called name from the data directory given
//by the environment, downloading the catalog first if needed.
func ReadBasis(name string) (*Document, error) {
	x, err := defaultExchange()
	if err != nil {
		return nil, errDecorate(err, "ReadBasis")
	}
	return x.ReadBasis(context.Background(), name)
}
