package arrowframe

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/go-sif/valido/errors"
)

// Format identifies a file format understood by Open and WriteFile
type Format = string

const (
	// IPCFileFormat is the Arrow IPC file (random access) format
	IPCFileFormat Format = "arrow"
	// IPCStreamFormat is the Arrow IPC streaming format
	IPCStreamFormat Format = "arrows"
	// ParquetFormat is the Apache Parquet format
	ParquetFormat Format = "parquet"
)

// FormatOf determines the Format of a file from its extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".arrow", ".feather", ".ipc":
		return IPCFileFormat, nil
	case ".arrows":
		return IPCStreamFormat, nil
	case ".parquet", ".pq":
		return ParquetFormat, nil
	default:
		return "", errors.UnsupportedFormatError{Path: path}
	}
}

// Open reads the schema of an Arrow IPC or Parquet file as a Frame
func Open(path string) (*Frame, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	var schema *arrow.Schema
	switch format {
	case IPCFileFormat:
		schema, err = readIPCFileSchema(path)
	case IPCStreamFormat:
		schema, err = readIPCStreamSchema(path)
	case ParquetFormat:
		schema, err = readParquetSchema(path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read schema of %s: %w", path, err)
	}
	return FromSchema(schema), nil
}

func readIPCFileSchema(path string) (*arrow.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Schema(), nil
}

func readIPCStreamSchema(path string) (*arrow.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := ipc.NewReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, err
	}
	defer r.Release()
	return r.Schema(), nil
}

func readParquetSchema(path string) (*arrow.Schema, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	reader, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, err
	}
	return reader.Schema()
}

// WriteFile writes a record to an Arrow IPC or Parquet file, choosing the format from the extension
func WriteFile(path string, rec arrow.Record) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		// the parquet writer closes the file itself
		if cerr := f.Close(); err == nil && !goerrors.Is(cerr, os.ErrClosed) {
			err = cerr
		}
	}()
	mem := memory.NewGoAllocator()
	switch format {
	case IPCFileFormat:
		w, err := ipc.NewFileWriter(f, ipc.WithAllocator(mem), ipc.WithSchema(rec.Schema()))
		if err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	case IPCStreamFormat:
		w := ipc.NewWriter(f, ipc.WithAllocator(mem), ipc.WithSchema(rec.Schema()))
		if err := w.Write(rec); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	default:
		tbl := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
		defer tbl.Release()
		chunkSize := tbl.NumRows()
		if chunkSize < 1 {
			chunkSize = 1
		}
		return pqarrow.WriteTable(tbl, f, chunkSize, nil, pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema()))
	}
}
