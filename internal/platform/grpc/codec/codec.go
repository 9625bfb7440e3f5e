// Package codec registers the gRPC wire codecs the customers contract is
// served with. They are selected per call through the gRPC content-subtype,
// so one server answers clients using any of them.
//
// The "proto" codec, which gRPC uses for plain application/grpc calls, is
// replaced by one that encodes the contract types with their own protobuf
// wire layout and hands every other message to the stock protobuf codec.
package codec

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
	grpcencoding "google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
)

const (
	// Protowire is the default codec: protobuf wire format produced by the
	// message types themselves.
	Protowire = "protowire"
	// Avro encodes messages as binary Avro against their declared schema.
	Avro = "avro"
	// Proto is the codec of calls without a content-subtype.
	Proto = grpcproto.Name
)

// AvroMessage is implemented by contract types that declare an Avro schema.
type AvroMessage interface {
	AvroSchema() avro.Schema
}

func init() {
	grpcencoding.RegisterCodec(protowireCodec{})
	grpcencoding.RegisterCodec(avroCodec{})
	grpcencoding.RegisterCodecV2(protoCodec{fallback: grpcencoding.GetCodecV2(Proto)})
}

// Names lists every registered codec name.
func Names() []string {
	return []string{Protowire, Avro}
}

// Valid reports whether name is a registered codec.
func Valid(name string) bool {
	switch name {
	case Protowire, Avro:
		return true
	default:
		return false
	}
}

type protowireCodec struct{}

func (protowireCodec) Name() string { return Protowire }

func (protowireCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("protowire codec: %T does not implement encoding.BinaryMarshaler", v)
	}
	return m.MarshalBinary()
}

func (protowireCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("protowire codec: %T does not implement encoding.BinaryUnmarshaler", v)
	}
	return m.UnmarshalBinary(data)
}

type avroCodec struct{}

func (avroCodec) Name() string { return Avro }

func (avroCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(AvroMessage)
	if !ok {
		return nil, fmt.Errorf("avro codec: %T does not declare an avro schema", v)
	}
	// Records are encoded from the struct value.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("avro codec: nil %T", v)
		}
		rv = rv.Elem()
	}
	data, err := avro.Marshal(m.AvroSchema(), rv.Interface())
	if err != nil {
		return nil, fmt.Errorf("avro codec: marshal %T: %w", v, err)
	}
	return data, nil
}

func (avroCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(AvroMessage)
	if !ok {
		return fmt.Errorf("avro codec: %T does not declare an avro schema", v)
	}
	if err := avro.Unmarshal(m.AvroSchema(), data, v); err != nil {
		return fmt.Errorf("avro codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// protoCodec serves the contract types on the default content type.
type protoCodec struct {
	fallback grpcencoding.CodecV2
}

func (protoCodec) Name() string { return Proto }

func (c protoCodec) Marshal(v any) (mem.BufferSlice, error) {
	if m, ok := v.(encoding.BinaryMarshaler); ok {
		data, err := m.MarshalBinary()
		if err != nil {
			return nil, err
		}
		return mem.BufferSlice{mem.SliceBuffer(data)}, nil
	}
	if c.fallback == nil {
		return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
	}
	return c.fallback.Marshal(v)
}

func (c protoCodec) Unmarshal(data mem.BufferSlice, v any) error {
	if m, ok := v.(encoding.BinaryUnmarshaler); ok {
		return m.UnmarshalBinary(data.Materialize())
	}
	if c.fallback == nil {
		return fmt.Errorf("proto codec: cannot unmarshal %T", v)
	}
	return c.fallback.Unmarshal(data, v)
}
