package shelf

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec converts records to and from their on-disk byte encoding.
//
// The store treats codec errors as opaque: they are wrapped in the failing
// operation's error kind, never inspected.
type Codec interface {
	// Encode serializes a record.
	Encode(v any) ([]byte, error)

	// Decode deserializes data into target, which must be a pointer.
	Decode(data []byte, target any) error

	// Extension returns the codec's file extension, including the leading
	// dot (e.g. ".json"). It becomes part of every record's file name.
	Extension() string
}

// Shipped codecs. JSON is the default.
var (
	// JSON stores records as indented, human-editable JSON files.
	JSON Codec = jsonCodec{}

	// YAML stores records as YAML files.
	YAML Codec = yamlCodec{}

	// Msgpack stores records as compact binary msgpack files.
	Msgpack Codec = msgpackCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Decode(data []byte, target any) error {
	return json.Unmarshal(data, target)
}

func (jsonCodec) Extension() string { return ".json" }

type yamlCodec struct{}

func (yamlCodec) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Decode(data []byte, target any) error {
	return yaml.Unmarshal(data, target)
}

func (yamlCodec) Extension() string { return ".yaml" }

type msgpackCodec struct{}

func (msgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Decode(data []byte, target any) error {
	return msgpack.Unmarshal(data, target)
}

func (msgpackCodec) Extension() string { return ".msgpack" }
