package flatfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/dmitrijs2005/mealplanner/internal/common"
)

const filePerm = 0o600

// Table is a header-managed delimited file.
type Table struct {
	path   string
	header []string
	// short rows are padded with empty fields instead of rejected
	allowShort bool
}

// NewTable binds a Table to path. Nothing touches the disk until a method is
// called.
func NewTable(path string, header ...string) *Table {
	return &Table{path: path, header: slices.Clone(header)}
}

// AllowShortRows makes ReadAll accept records narrower than the header,
// padding the missing trailing fields with empty strings. Files written by
// older releases carry fewer columns under the same name.
func (t *Table) AllowShortRows() *Table {
	t.allowShort = true
	return t
}

// Path returns the backing file path.
func (t *Table) Path() string {
	return t.path
}

// Header returns a copy of the header row.
func (t *Table) Header() []string {
	return slices.Clone(t.header)
}

// Ensure creates the file with only the header row when it does not exist.
// It reports whether the file was created.
func (t *Table) Ensure(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, common.StorageError("create "+t.path, err)
	}

	if err := t.writeRows(f, [][]string{t.header}); err != nil {
		_ = f.Close()
		return false, common.StorageError("write header "+t.path, err)
	}
	if err := f.Close(); err != nil {
		return false, common.StorageError("close "+t.path, err)
	}
	return true, nil
}

// ReadAll returns every record after the header. A missing or empty file
// yields no records and no error.
func (t *Table) ReadAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, common.StorageError("open "+t.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(t.header)
	if t.allowShort {
		r.FieldsPerRecord = -1
	}

	// header
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, common.StorageError("read header "+t.path, err)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, common.StorageError("read "+t.path, err)
		}
		if t.allowShort {
			if rec, err = t.pad(rec); err != nil {
				return nil, common.StorageError("read "+t.path, err)
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Append adds rows to the end of the file. The header is written first if
// the file is missing or empty. A file whose last line lacks a terminating
// newline gets one before the new rows.
func (t *Table) Append(ctx context.Context, rows ...[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.checkWidth(rows); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return common.StorageError("open "+t.path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return common.StorageError("stat "+t.path, err)
	}
	if fi.Size() == 0 {
		rows = append([][]string{t.header}, rows...)
	} else if err := terminateLastLine(f, fi.Size()); err != nil {
		_ = f.Close()
		return common.StorageError("append "+t.path, err)
	}

	if err := t.writeRows(f, rows); err != nil {
		_ = f.Close()
		return common.StorageError("append "+t.path, err)
	}
	if err := f.Close(); err != nil {
		return common.StorageError("close "+t.path, err)
	}
	return nil
}

// Rewrite replaces the whole file with the header followed by rows.
func (t *Table) Rewrite(ctx context.Context, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.checkWidth(rows); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return common.StorageError("open "+t.path, err)
	}

	all := make([][]string, 0, len(rows)+1)
	all = append(all, t.header)
	all = append(all, rows...)

	if err := t.writeRows(f, all); err != nil {
		_ = f.Close()
		return common.StorageError("rewrite "+t.path, err)
	}
	if err := f.Close(); err != nil {
		return common.StorageError("close "+t.path, err)
	}
	return nil
}

func (t *Table) checkWidth(rows [][]string) error {
	for _, r := range rows {
		if len(r) != len(t.header) {
			return common.ValidationError("row has wrong number of fields")
		}
	}
	return nil
}

func (t *Table) pad(rec []string) ([]string, error) {
	if len(rec) > len(t.header) {
		return nil, errors.New("record has more fields than the header")
	}
	for len(rec) < len(t.header) {
		rec = append(rec, "")
	}
	return rec, nil
}

// terminateLastLine writes a newline when the file of the given size does
// not already end with one.
func terminateLastLine(f *os.File, size int64) error {
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, size-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err := f.Write([]byte{'\n'})
	return err
}

func (t *Table) writeRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
