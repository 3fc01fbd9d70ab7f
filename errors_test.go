package shelf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aigotowork/shelf"
)

// fakeFS wraps the real filesystem and injects failures per method.
type fakeFS struct {
	real      shelf.FileSystem
	writeErr  error
	readErr   error
	mkdirErr  error
	listErr   error
	removeErr error
}

func newFakeFS() *fakeFS {
	return &fakeFS{real: shelf.DefaultFileSystem()}
}

func (f *fakeFS) Exists(path string) bool { return f.real.Exists(path) }

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.real.ReadFile(path)
}

func (f *fakeFS) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.real.WriteFileAtomic(path, data, perm)
}

func (f *fakeFS) MkdirAll(path string, perm os.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	return f.real.MkdirAll(path, perm)
}

func (f *fakeFS) ListFiles(dir string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.real.ListFiles(dir)
}

func (f *fakeFS) RemoveFile(path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.real.RemoveFile(path)
}

func TestSaveWriteFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeFS()
	fs.writeErr = errors.New("disk full")
	store := newStore(t, shelf.WithFileSystem(fs))

	err := store.Save(ctx, Message{ID: "1"})
	require.ErrorIs(t, err, shelf.ErrStoreFailed)
	require.ErrorContains(t, err, "disk full")
}

func TestSaveEncodeFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	err := store.Save(ctx, unencodableRecord{id: "1"})
	require.ErrorIs(t, err, shelf.ErrStoreFailed)
	require.ErrorContains(t, err, "cannot encode")
}

// unencodableRecord always fails to serialize.
type unencodableRecord struct {
	id string
}

func (r unencodableRecord) RecordID() string { return r.id }

func (r unencodableRecord) MarshalJSON() ([]byte, error) {
	return nil, errors.New("cannot encode")
}

func TestSaveSurvivesMkdirFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeFS()
	fs.mkdirErr = errors.New("mkdir denied")
	store := newStore(t, shelf.WithFileSystem(fs))

	// Directory creation is best-effort; the atomic write creates the
	// directory itself and the save succeeds.
	require.NoError(t, store.Save(ctx, Message{ID: "1", Data: "x"}))

	var loaded Message
	require.NoError(t, store.Load(ctx, "1", &loaded))
}

func TestLoadReadFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeFS()
	store := newStore(t, shelf.WithFileSystem(fs))

	require.NoError(t, store.Save(ctx, Message{ID: "1"}))

	fs.readErr = errors.New("io error")
	var loaded Message
	err := store.Load(ctx, "1", &loaded)
	require.ErrorIs(t, err, shelf.ErrLoadFailed)
}

func TestLoadCorruptFile(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.Save(ctx, Message{ID: "1", Data: "good"}))

	// Corrupt the file behind the store's back.
	path := filepath.Join(store.Root(), "Message", "1.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var loaded Message
	err := store.Load(ctx, "1", &loaded)
	require.ErrorIs(t, err, shelf.ErrLoadFailed)
}

func TestLoadAllFailsAtomically(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.Save(ctx, Message{ID: "1", Data: "good"}))
	require.NoError(t, store.Save(ctx, Message{ID: "2", Data: "good"}))

	path := filepath.Join(store.Root(), "Message", "2.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var all []Message
	err := store.LoadAll(ctx, &all)
	require.ErrorIs(t, err, shelf.ErrLoadFailed)

	// No partial result on error.
	require.Nil(t, all)
}

func TestDeleteRemovalFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeFS()
	store := newStore(t, shelf.WithFileSystem(fs))

	msg := Message{ID: "1"}
	require.NoError(t, store.Save(ctx, msg))

	fs.removeErr = errors.New("permission denied")
	err := store.Delete(ctx, msg)
	require.ErrorIs(t, err, shelf.ErrDeleteFailed)
	require.ErrorContains(t, err, "permission denied")
}

func TestDeleteAllListFailure(t *testing.T) {
	ctx := context.Background()
	fs := newFakeFS()
	store := newStore(t, shelf.WithFileSystem(fs))

	require.NoError(t, store.Save(ctx, Message{ID: "1"}))

	fs.listErr = errors.New("io error")
	err := store.DeleteAll(ctx, Message{})
	require.ErrorIs(t, err, shelf.ErrDeleteFailed)
}

func TestUnsafeIdentifierRejected(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	err := store.Save(ctx, Message{ID: "../../etc/passwd"})
	require.ErrorIs(t, err, shelf.ErrStoreFailed)
	require.ErrorIs(t, err, shelf.ErrUnsafePathSegment)

	var loaded Message
	err = store.Load(ctx, "a/b", &loaded)
	require.ErrorIs(t, err, shelf.ErrLoadFailed)
	require.ErrorIs(t, err, shelf.ErrUnsafePathSegment)

	err = store.Save(ctx, Message{ID: ""})
	require.ErrorIs(t, err, shelf.ErrUnsafePathSegment)
}

func TestUnsafeFolderRejected(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	err := store.Save(ctx, Message{ID: "1"}, shelf.WithFolder(".."))
	require.ErrorIs(t, err, shelf.ErrStoreFailed)
	require.ErrorIs(t, err, shelf.ErrUnsafePathSegment)

	var all []Message
	err = store.LoadAll(ctx, &all, shelf.WithFolder("a/b"))
	require.ErrorIs(t, err, shelf.ErrLoadFailed)
	require.ErrorIs(t, err, shelf.ErrUnsafePathSegment)
}

func TestCanceledContext(t *testing.T) {
	store := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Save(ctx, Message{ID: "1"}), shelf.ErrStoreFailed)

	var loaded Message
	require.ErrorIs(t, store.Load(ctx, "1", &loaded), shelf.ErrLoadFailed)

	var all []Message
	require.ErrorIs(t, store.LoadAll(ctx, &all), shelf.ErrLoadFailed)
	require.ErrorIs(t, store.Delete(ctx, Message{ID: "1"}), shelf.ErrDeleteFailed)
	require.ErrorIs(t, store.DeleteAll(ctx, Message{}), shelf.ErrDeleteFailed)
}
