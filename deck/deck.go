/*
 * deck.go, part of qcinput
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package deck archives rendered QC input texts into a single
//compressed stream, for batch job preparation over many records or
//many frames of the same record. The compression codec is selected
//from the last letter of the file name: 'r' for flate, 'z' for gzip,
//'s' for zstd, anything else also meaning zstd.
package deck

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Write!

type DeckW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	n         int
}

//NewWriter opens name for writing and sets up the compression chain.
//Only the first compressionLevel is read; it applies to the
//flate/gzip codecs and defaults to their best setting.
func NewWriter(name string, compressionLevel ...int) (*DeckW, error) {
	level := flate.BestCompression
	if len(compressionLevel) > 0 {
		if compressionLevel[0] < flate.HuffmanOnly || compressionLevel[0] > flate.BestCompression {
			log.Printf("Invalid compression level for deck %s. Will use the default", name)
		} else {
			level = compressionLevel[0]
		}
	}
	D := new(DeckW)
	var err error
	D.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, level) }
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch format(name) {
	case 'r':
		anyNewWriter = zwriter
	case 'z':
		anyNewWriter = gzipwriter
	default:
		anyNewWriter = zstdwriter
	}
	D.h, err = anyNewWriter(D.f)
	if err != nil {
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	D.filename = name
	D.writeable = true
	return D, nil
}

//WNext appends one rendered input text to the deck.
func (D *DeckW) WNext(text string) error {
	if !D.writeable {
		return Error{"Deck not writeable", D.filename, []string{"WNext"}, true}
	}
	if text == "" {
		return Error{"Empty input text given", D.filename, []string{"WNext"}, true}
	}
	header := fmt.Sprintf("** %d %d\n", D.n, len(text))
	if _, err := D.h.Write([]byte(header)); err != nil {
		return Error{err.Error(), D.filename, []string{"WNext"}, true}
	}
	if _, err := D.h.Write([]byte(text)); err != nil {
		return Error{err.Error(), D.filename, []string{"WNext"}, true}
	}
	D.n++
	return nil
}

//Len returns the number of inputs written so far.
func (D *DeckW) Len() int {
	return D.n
}

//Close flushes and closes the deck. The writer can not be used after
//this call.
func (D *DeckW) Close() {
	if D == nil {
		return
	}
	if D.writeable {
		D.h.Close()
		D.f.Close()
	}
	D.writeable = false
}

//Read!

type DeckR struct {
	f        *os.File
	h        io.ReadCloser
	br       *bufio.Reader
	filename string
	readable bool
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//NewReader opens a deck previously written by NewWriter/WNext. The
//codec is selected from the file name the same way as when writing.
func NewReader(name string) (*DeckR, error) {
	D := new(DeckR)
	var err error
	D.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	switch format(name) {
	case 'r':
		D.h = flate.NewReader(D.f)
	case 'z':
		D.h, err = gzip.NewReader(D.f)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(D.f)
		if err == nil {
			D.h = zstdql{d.Close, d}
		}
	}
	if err != nil {
		return nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"NewReader"}, true}
	}
	D.br = bufio.NewReader(D.h)
	D.filename = name
	D.readable = true
	return D, nil
}

//Next returns the next input text in the deck. It returns io.EOF after
//the last one.
func (D *DeckR) Next() (string, error) {
	if !D.readable {
		return "", Error{"Deck not open for reading", D.filename, []string{"Next"}, true}
	}
	header, err := D.br.ReadString('\n')
	if err == io.EOF && header == "" {
		return "", io.EOF
	}
	if err != nil {
		return "", Error{"Can't read record header: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(header)
	if len(fields) != 3 || fields[0] != "**" {
		return "", Error{fmt.Sprintf("Malformed record header %q", header), D.filename, []string{"Next"}, true}
	}
	size, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", Error{"Malformed record size: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(D.br, buf); err != nil {
		return "", Error{"Truncated record: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	return string(buf), nil
}

//Close closes the deck. The reader can not be used after this call.
func (D *DeckR) Close() {
	if D == nil {
		return
	}
	if D.readable {
		D.h.Close()
		D.f.Close()
	}
	D.readable = false
}

func format(name string) byte {
	return strings.ToLower(name)[len(name)-1]
}

//Error is the error type of the deck package.
type Error struct {
	message  string
	filename string //the deck that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("deck file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the current
//decoration.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing deck was associated.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
