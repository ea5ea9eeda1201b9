package keywords

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"
)

// Format of a keyword database file
type Format string

const (
	FormatCSV      Format = "csv"
	FormatCompiled Format = "compiled"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatCompiled:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: unknown database format %q", ErrInvalidInput, s)
}

// Compile writes db as a snappy framed msgpack stream: the entry count
// followed by one (keyword, weight) pair per entry in table order.
func Compile(w io.Writer, db *Database) error {
	sw := snappy.NewBufferedWriter(w)
	encoder := msgpack.NewEncoder(sw)

	if err := encoder.EncodeInt(int64(db.Size())); err != nil {
		return err
	}
	for key, weight := range db.All() {
		if err := encoder.EncodeString(key); err != nil {
			return err
		}
		if err := encoder.EncodeInt(int64(weight)); err != nil {
			return err
		}
	}
	return sw.Close()
}

// LoadCompiled reads a database written by Compile.
func LoadCompiled(r io.Reader) (*Database, error) {
	decoder := msgpack.NewDecoder(snappy.NewReader(r))

	count, err := decoder.DecodeInt()
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry count: %v", ErrInvalidInput, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative entry count %d", ErrInvalidInput, count)
	}

	db := NewDatabase()
	for i := 0; i < count; i++ {
		key, err := decoder.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidInput, i, err)
		}
		weight, err := decoder.DecodeInt()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidInput, i, err)
		}
		if key == "" || weight < 0 {
			return nil, fmt.Errorf("%w: entry %d: bad keyword %q weight %d", ErrInvalidInput, i, key, weight)
		}
		if !db.Insert(key, weight) {
			klog.WithField("keyword", key).Debugf("duplicate keyword in compiled entry %d ignored", i)
		}
	}
	return db, nil
}

// Open loads the database at path in the given format.
func Open(path string, format Format) (*Database, error) {
	if format == FormatCSV {
		return LoadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	return LoadCompiled(f)
}

func CompileFile(path string, db *Database) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := Compile(f, db); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
