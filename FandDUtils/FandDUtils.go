/* Shared I/O helpers for the f-and-d-values tools */

package fanddutils

import (
	"bufio"
	originalbzip2 "compress/bzip2"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/dsnet/compress/bzip2"
	gzip "github.com/klauspost/pgzip"
)

/*Filename type used to check if files exists */
type Filename string

/*Set ... */
func (i *Filename) Set(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		panic(fmt.Sprintf("!!!!Error %s with file: %s\n", err, filename))
	}

	*i = Filename(filename)
	return nil
}

func (i *Filename) String() string {
	return string(*i)
}

/*ReturnReader Return reader for file */
func (i *Filename) ReturnReader(startingLine int) (*bufio.Scanner, *os.File) {
	return ReturnReader(string(*i), startingLine)
}

type closer interface {
	Close() error
}

/*Check ... */
func Check(err error) {
	if err != nil {
		panic(err)
	}
}

/*CloseFile close file checking error */
func CloseFile(file closer) {
	err := file.Close()
	Check(err)
}

/*ReturnWriter return a writer for fname; .gz and .bz2 outputs are compressed */
func ReturnWriter(fname string) io.WriteCloser {
	writer, err := ReturnWriterOrErr(fname)
	Check(err)

	return writer
}

/*ReturnWriterOrErr same as ReturnWriter but surfaces the error with the path */
func ReturnWriterOrErr(fname string) (io.WriteCloser, error) {
	ext := path.Ext(fname)

	switch ext {
	case ".bz2":
		return returnWriterForBzipfile(fname)
	case ".gz":
		return returnWriterForGzipFile(fname)
	default:
		outputFile, err := os.Create(fname)

		if err != nil {
			return nil, fmt.Errorf("cannot open %s for writing: %s", fname, err)
		}

		return outputFile, nil
	}
}

func returnWriterForGzipFile(fname string) (io.WriteCloser, error) {
	outputFile, err := os.Create(fname)

	if err != nil {
		return nil, fmt.Errorf("cannot open %s for writing: %s", fname, err)
	}

	return gzip.NewWriter(outputFile), nil
}

func returnWriterForBzipfile(fname string) (io.WriteCloser, error) {
	outputFile, err := os.Create(fname)

	if err != nil {
		return nil, fmt.Errorf("cannot open %s for writing: %s", fname, err)
	}

	bzipFile, err := bzip2.NewWriter(outputFile, new(bzip2.WriterConfig))

	if err != nil {
		return nil, err
	}

	return bzipFile, nil
}

/*ReturnReader return a scanner for fname positioned after startingLine */
func ReturnReader(fname string, startingLine int) (*bufio.Scanner, *os.File) {
	reader, fileOpen := returnRawReader(fname)
	scanner := bufio.NewScanner(reader)

	if startingLine > 0 {
		scanUntilStartingLine(scanner, startingLine)
	}

	return scanner, fileOpen
}

/*ReturnReadCloser return an io.ReadCloser for fname; .gz and .bz2 inputs are decompressed */
func ReturnReadCloser(fname string) (io.ReadCloser, error) {
	fileOpen, err := os.Open(fname)

	if err != nil {
		return nil, fmt.Errorf("cannot open %s for reading: %s", fname, err)
	}

	switch path.Ext(fname) {
	case ".bz2":
		return &wrappedReadCloser{originalbzip2.NewReader(bufio.NewReader(fileOpen)), fileOpen}, nil
	case ".gz":
		readerGzip, err := gzip.NewReader(bufio.NewReader(fileOpen))

		if err != nil {
			CloseFile(fileOpen)
			return nil, fmt.Errorf("cannot open %s for reading: %s", fname, err)
		}

		return &wrappedReadCloser{readerGzip, fileOpen}, nil
	default:
		return fileOpen, nil
	}
}

/*wrappedReadCloser decompressing reader that closes the underlying file */
type wrappedReadCloser struct {
	reader io.Reader
	file   *os.File
}

func (w *wrappedReadCloser) Read(p []byte) (int, error) {
	return w.reader.Read(p)
}

func (w *wrappedReadCloser) Close() error {
	if readerCloser, ok := w.reader.(io.Closer); ok {
		if err := readerCloser.Close(); err != nil {
			w.file.Close()
			return err
		}
	}

	return w.file.Close()
}

func returnRawReader(fname string) (io.Reader, *os.File) {
	fileOpen, err := os.Open(fname)
	Check(err)

	readerOs := bufio.NewReader(fileOpen)

	switch path.Ext(fname) {
	case ".bz2":
		return originalbzip2.NewReader(readerOs), fileOpen
	case ".gz":
		readerGzip, err := gzip.NewReader(readerOs)
		Check(err)
		return readerGzip, fileOpen
	default:
		return readerOs, fileOpen
	}
}

func scanUntilStartingLine(scanner *bufio.Scanner, nbLine int) {
	var ok bool
	for i := 0; i < nbLine; i++ {
		ok = scanner.Scan()

		if !ok {
			break
		}
	}
}

/*CountNbLines count the number of lines of a file */
func CountNbLines(fname string) int {
	scanner, file := ReturnReader(fname, 0)

	defer CloseFile(file)
	nbLines := 0

	for scanner.Scan() {
		nbLines++
	}

	return nbLines
}
