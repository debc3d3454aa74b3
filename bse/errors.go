/*
 * errors.go, part of goato.
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
	"fmt"
	"strings"
)

//Error kinds. Use errors.Is to check for them.
var (
	ErrConfig           = errors.New("configuration error")
	ErrIO               = errors.New("i/o error")
	ErrNetwork          = errors.New("network error")
	ErrSchema           = errors.New("schema error")
	ErrBasisSetNotFound = errors.New("basis set not found")
)

//Error is the error type for the bse package. Besides the message, it keeps
//the kind of failure, the file (or URL) involved, if any, the error that
//caused it, and a "decoration" with the names of the functions it has passed through.
type Error struct {
	kind     error
	message  string
	filename string //the file or URL that has problems, or empty string if none.
	deco     []string
	cause    error
}

func newError(kind error, message, filename, caller string, cause error) *Error {
	return &Error{kind: kind, message: message, filename: filename, deco: []string{caller}, cause: cause}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("bse: ")
	b.WriteString(err.message)
	if err.filename != "" {
		fmt.Fprintf(&b, " (%s)", err.filename)
	}
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

//Decorate adds deco to the list of callers the error has passed through, and
//returns the list. An empty string just returns the current list.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file or URL associated with the error, if any.
func (err *Error) FileName() string { return err.filename }

//Kind returns the sentinel (ErrIO, ErrNetwork...) describing the failure.
func (err *Error) Kind() error { return err.kind }

func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
