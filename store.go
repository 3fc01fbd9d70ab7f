package shelf

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// resolveDir resolves the directory holding all records of one type, with an
// optional folder segment between the type directory and the record files.
func (s *Store) resolveDir(typeName, folder string) (string, error) {
	if err := validSegment(typeName); err != nil {
		return "", err
	}
	if folder == "" {
		return filepath.Join(s.root, typeName), nil
	}
	if err := validSegment(folder); err != nil {
		return "", err
	}
	return filepath.Join(s.root, typeName, folder), nil
}

// resolveFile resolves the full path of a single record file.
func (s *Store) resolveFile(typeName, folder, id string) (string, error) {
	dir, err := s.resolveDir(typeName, folder)
	if err != nil {
		return "", err
	}
	if err := validSegment(id); err != nil {
		return "", err
	}
	return filepath.Join(dir, id+s.codec.Extension()), nil
}

// Save encodes the record and writes it to its resolved path, creating the
// type and folder directories as needed. An existing file for the same id is
// replaced atomically: readers observe either the prior content or the new
// content, never a mix.
func (s *Store) Save(ctx context.Context, record Record, opts ...OpOption) error {
	if err := ctx.Err(); err != nil {
		return storeErr(err)
	}

	options := applyOpOptions(opts)

	data, err := s.codec.Encode(record)
	if err != nil {
		return storeErr(err)
	}

	typeName, err := typeNameOf(record)
	if err != nil {
		return storeErr(err)
	}

	path, err := s.resolveFile(typeName, options.folder, record.RecordID())
	if err != nil {
		return storeErr(err)
	}

	// Best-effort: a real problem surfaces in the write below.
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.logger.Warn("failed to create record directory", Field{"path", filepath.Dir(path)}, Field{"error", err})
	}

	if err := s.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return storeErr(err)
	}

	s.logger.Debug("stored record", Field{"path", path}, Field{"bytes", len(data)})
	return nil
}

// Load reads and decodes the record with the given id into target, which must
// be a pointer to the record type. A missing file is an ErrLoadFailed: a
// caller asking for one specific record expects it to exist.
func (s *Store) Load(ctx context.Context, id string, target Record, opts ...OpOption) error {
	if err := ctx.Err(); err != nil {
		return loadErr(err)
	}

	options := applyOpOptions(opts)

	typeName, err := typeNameOf(target)
	if err != nil {
		return loadErr(err)
	}

	path, err := s.resolveFile(typeName, options.folder, id)
	if err != nil {
		return loadErr(err)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return loadErr(err)
	}

	if err := s.codec.Decode(data, target); err != nil {
		return loadErr(err)
	}

	s.logger.Debug("loaded record", Field{"path", path})
	return nil
}

// LoadAll decodes every record of one type into target, which must be a
// pointer to a slice of the record type ([]T or []*T). A missing type or
// folder directory means "no records yet" and yields an empty slice, not an
// error. Records are returned in filename order.
//
// The call fails atomically with ErrLoadFailed on the first entry that cannot
// be read or decoded; no partial slice is returned.
func (s *Store) LoadAll(ctx context.Context, target any, opts ...OpOption) error {
	if err := ctx.Err(); err != nil {
		return loadErr(err)
	}

	options := applyOpOptions(opts)

	typeName, err := elemTypeNameOf(target)
	if err != nil {
		return loadErr(err)
	}

	dir, err := s.resolveDir(typeName, options.folder)
	if err != nil {
		return loadErr(err)
	}

	sliceVal := reflect.ValueOf(target).Elem()
	out := reflect.MakeSlice(sliceVal.Type(), 0, 0)

	if !s.fs.Exists(dir) {
		sliceVal.Set(out)
		return nil
	}

	files, err := s.fs.ListFiles(dir)
	if err != nil {
		return loadErr(err)
	}

	elemType := sliceVal.Type().Elem()
	baseType := elemType
	if baseType.Kind() == reflect.Pointer {
		baseType = baseType.Elem()
	}

	for _, file := range files {
		// Only record files; temp files from in-flight writes and foreign
		// extensions are not records.
		if !strings.HasSuffix(file, s.codec.Extension()) {
			continue
		}

		data, err := s.fs.ReadFile(file)
		if err != nil {
			return loadErr(err)
		}

		elem := reflect.New(baseType)
		if err := s.codec.Decode(data, elem.Interface()); err != nil {
			return loadErr(err)
		}

		if elemType.Kind() == reflect.Pointer {
			out = reflect.Append(out, elem)
		} else {
			out = reflect.Append(out, elem.Elem())
		}
	}

	sliceVal.Set(out)
	s.logger.Debug("loaded records", Field{"dir", dir}, Field{"count", out.Len()})
	return nil
}

// Delete removes the record's file. Deleting a record that does not exist is
// a no-op, not an error; Delete is idempotent.
func (s *Store) Delete(ctx context.Context, record Record, opts ...OpOption) error {
	if err := ctx.Err(); err != nil {
		return deleteErr(err)
	}

	options := applyOpOptions(opts)

	typeName, err := typeNameOf(record)
	if err != nil {
		return deleteErr(err)
	}

	path, err := s.resolveFile(typeName, options.folder, record.RecordID())
	if err != nil {
		return deleteErr(err)
	}

	if !s.fs.Exists(path) {
		return nil
	}

	if err := s.fs.RemoveFile(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return deleteErr(err)
	}

	s.logger.Debug("deleted record", Field{"path", path})
	return nil
}

// DeleteAll removes every record of one type, scoped to the given folder when
// one is set. A missing directory is success: there was nothing to delete.
//
// Removal is not transactional. If a removal fails partway through, files
// already removed stay removed and the call fails with ErrDeleteFailed.
func (s *Store) DeleteAll(ctx context.Context, prototype any, opts ...OpOption) error {
	if err := ctx.Err(); err != nil {
		return deleteErr(err)
	}

	options := applyOpOptions(opts)

	typeName, err := typeNameOf(prototype)
	if err != nil {
		return deleteErr(err)
	}

	dir, err := s.resolveDir(typeName, options.folder)
	if err != nil {
		return deleteErr(err)
	}

	if !s.fs.Exists(dir) {
		return nil
	}

	files, err := s.fs.ListFiles(dir)
	if err != nil {
		return deleteErr(err)
	}

	for _, file := range files {
		if err := s.fs.RemoveFile(file); err != nil {
			return deleteErr(err)
		}
	}

	s.logger.Debug("deleted records", Field{"dir", dir}, Field{"count", len(files)})
	return nil
}

// Exists reports whether a record file for the given id is present. The
// prototype carries the record type; its contents are ignored. No decoding is
// performed.
func (s *Store) Exists(ctx context.Context, id string, prototype any, opts ...OpOption) bool {
	if ctx.Err() != nil {
		return false
	}

	options := applyOpOptions(opts)

	typeName, err := typeNameOf(prototype)
	if err != nil {
		return false
	}

	path, err := s.resolveFile(typeName, options.folder, id)
	if err != nil {
		return false
	}

	return s.fs.Exists(path)
}
