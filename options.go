package shelf

// Option is a function that configures a Store.
type Option func(*storeOptions)

// storeOptions holds configuration options for creating a store.
type storeOptions struct {
	codec  Codec
	fs     FileSystem
	logger Logger
}

// WithCodec sets the codec used to encode and decode records.
// The default is JSON.
//
// Example:
//
//	store, err := shelf.New("/data", shelf.WithCodec(shelf.YAML))
func WithCodec(codec Codec) Option {
	return func(o *storeOptions) {
		o.codec = codec
	}
}

// WithFileSystem sets the filesystem the store operates on.
// The default uses the local disk.
func WithFileSystem(fs FileSystem) Option {
	return func(o *storeOptions) {
		o.fs = fs
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(logger Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// OpOption is a function that configures a single store operation.
type OpOption func(*opOptions)

// opOptions holds options for a single operation.
type opOptions struct {
	folder string
}

// WithFolder scopes an operation to a named folder under the record's type
// directory. Records of the same type and id in different folders are
// distinct; one's lifecycle never affects the other's.
//
// Example:
//
//	store.Save(ctx, msg, shelf.WithFolder("user1"))
func WithFolder(name string) OpOption {
	return func(o *opOptions) {
		o.folder = name
	}
}

// applyOpOptions resolves per-operation options.
func applyOpOptions(opts []OpOption) *opOptions {
	options := &opOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
