/*
Package shelf provides a minimal per-entity file-based persistence layer.

Each record is stored as one encoded file under a directory named after the
record's type, optionally partitioned by a folder, keyed by the record's id:

	<root>/<TypeName>/[<folder>/]<id>.<ext>

Quick Start:

	type User struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	func (u User) RecordID() string { return u.ID }

	store := shelf.MustNew("/data/myapp")

	// Store a record
	err := store.Save(ctx, User{ID: "42", Name: "Ada"})

	// Retrieve it
	var u User
	err = store.Load(ctx, "42", &u)

	// List everything of one type
	var users []User
	err = store.LoadAll(ctx, &users)

Features:

- One human-readable file per record (JSON by default; YAML and msgpack codecs available)
- Optional folders partitioning records of the same type
- Atomic writes: readers never observe a partially written file
- No caching or indexing; the filesystem is the single source of truth
- Injectable filesystem and codec collaborators for testing

Shelf is not a database: there is no querying by field, no transactions
spanning records, and no schema migration.
*/
package shelf

import (
	"github.com/aigotowork/shelf/internal/fsutil"
)

// Store persists records as individual files under a container root.
//
// A Store holds no state beyond its configuration: every operation re-derives
// the target path from its inputs and queries the filesystem directly. It is
// safe for concurrent use; operations on the same record race at the
// filesystem level with last-writer-wins semantics.
type Store struct {
	root   string
	codec  Codec
	fs     FileSystem
	logger Logger
}

// New creates a store rooted at the given container path.
//
// The path is resolved to an absolute path but no I/O is performed; type and
// folder directories are created lazily by Save.
//
// Example:
//
//	store, err := shelf.New("/data/myapp", shelf.WithCodec(shelf.YAML))
func New(root string, opts ...Option) (*Store, error) {
	options := &storeOptions{
		codec:  JSON,
		fs:     DefaultFileSystem(),
		logger: NewDefaultLogger(),
	}

	for _, opt := range opts {
		opt(options)
	}

	absPath, err := fsutil.AbsPath(root)
	if err != nil {
		return nil, err
	}

	return &Store{
		root:   absPath,
		codec:  options.codec,
		fs:     options.fs,
		logger: options.logger,
	}, nil
}

// MustNew is like New but panics on error.
// Useful for initialization code where errors are unrecoverable.
func MustNew(root string, opts ...Option) *Store {
	s, err := New(root, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Root returns the absolute container root path.
func (s *Store) Root() string {
	return s.root
}
