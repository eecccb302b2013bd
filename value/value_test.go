package value

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"
)

func mustSerialize(t *testing.T, v any) string {
	t.Helper()
	s, err := Serialize(v)
	if err != nil {
		t.Fatalf("Serialize(%v): %v", v, err)
	}
	return s
}

func mustDeserialize(t *testing.T, wire string) any {
	t.Helper()
	v, err := Deserialize(wire)
	if err != nil {
		t.Fatalf("Deserialize(%q): %v", wire, err)
	}
	return v
}

func TestSerializeStringsPassThrough(t *testing.T) {
	for _, s := range []string{"", "foo", "j-ish but not tagged", "{\"looks\":\"like json\"}"} {
		if got := mustSerialize(t, s); got != s {
			t.Fatalf("Serialize(%q) = %q, expected unchanged", s, got)
		}
		if got := mustDeserialize(t, s); got != s {
			t.Fatalf("Deserialize(%q) = %v, expected unchanged", s, got)
		}
	}
}

func TestSerializeTagsStructured(t *testing.T) {
	cases := []struct {
		v    any
		want string
	}{
		{42, "j:42"},
		{[]int{1, 2, 3}, "j:[1,2,3]"},
		{map[string]any{"name": "foo"}, `j:{"name":"foo"}`},
		{true, "j:true"},
		{nil, "j:null"},
	}
	for _, tc := range cases {
		if got := mustSerialize(t, tc.v); got != tc.want {
			t.Fatalf("Serialize(%v) = %q want %q", tc.v, got, tc.want)
		}
	}
}

func TestRoundTripStructured(t *testing.T) {
	cases := []struct {
		v    any
		want any // JSON-normalized form
	}{
		{"plain", "plain"},
		{22, float64(22)},
		{[]any{float64(1), float64(2), float64(3)}, []any{float64(1), float64(2), float64(3)}},
		{map[string]any{"name": "foo", "age": float64(22)}, map[string]any{"name": "foo", "age": float64(22)}},
	}
	for _, tc := range cases {
		got := mustDeserialize(t, mustSerialize(t, tc.v))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("round trip %v: got %#v want %#v", tc.v, got, tc.want)
		}
	}
}

func TestDeserializeMalformed(t *testing.T) {
	for _, wire := range []string{"j:", "j:{broken", "j:[1,2,", "j:not json"} {
		if _, err := Deserialize(wire); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Deserialize(%q): expected ErrMalformed, got %v", wire, err)
		}
	}
}

func TestSerializeUnsupported(t *testing.T) {
	if _, err := Serialize(make(chan int)); err == nil {
		t.Fatalf("expected error for unserializable value")
	}
}

type session struct {
	User  string `json:"user" msgpack:"user" cbor:"user"`
	Admin bool   `json:"admin" msgpack:"admin" cbor:"admin"`
	Hits  int    `json:"hits" msgpack:"hits" cbor:"hits"`
}

func TestPackUnpackCodecs(t *testing.T) {
	want := session{User: "ada", Admin: true, Hits: 7}

	codecs := map[string]Codec[session]{
		"json":    JSON[session]{},
		"msgpack": Msgpack[session]{},
		"cbor":    MustCBOR[session](true),
	}
	for name, c := range codecs {
		wire, err := Pack(c, want)
		if err != nil {
			t.Fatalf("%s: Pack: %v", name, err)
		}
		if !strings.HasPrefix(wire, "b:") {
			t.Fatalf("%s: Pack output %q missing binary tag", name, wire)
		}
		// Opaque to the untyped path: no "j:" tag, so it stays a string.
		if got := mustDeserialize(t, wire); got != wire {
			t.Fatalf("%s: packed wire not opaque to Deserialize", name)
		}
		got, err := Unpack(c, wire)
		if err != nil {
			t.Fatalf("%s: Unpack: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: round trip: got %+v want %+v", name, got, want)
		}
	}
}

func TestUnpackRejectsMalformed(t *testing.T) {
	c := JSON[session]{}
	for _, wire := range []string{"", "no-tag", "j:{}", "b:!!!not base64"} {
		if _, err := Unpack(c, wire); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Unpack(%q): expected ErrMalformed, got %v", wire, err)
		}
	}
}

func TestProtobufCodec(t *testing.T) {
	in, err := structpb.NewStruct(map[string]any{"name": "foo", "age": 22.0})
	if err != nil {
		t.Fatalf("structpb.NewStruct: %v", err)
	}
	c := NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })

	wire, err := Pack[*structpb.Struct](c, in)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	out, err := Unpack[*structpb.Struct](c, wire)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !reflect.DeepEqual(out.AsMap(), in.AsMap()) {
		t.Fatalf("proto round trip: got %v want %v", out.AsMap(), in.AsMap())
	}
}

func TestLimitCodec(t *testing.T) {
	inner := String{}
	c := Limit[string]{Inner: inner, MaxDecode: 4}

	if _, err := c.Decode([]byte("okay")); err != nil {
		t.Fatalf("Decode under limit: %v", err)
	}
	if _, err := c.Decode([]byte("too long")); err == nil {
		t.Fatalf("expected error above limit")
	}
	// Encode is never limited.
	if _, err := c.Encode("much longer than four bytes"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Disabled limit.
	open := Limit[string]{Inner: inner}
	if _, err := open.Decode([]byte("any size goes here")); err != nil {
		t.Fatalf("Decode with disabled limit: %v", err)
	}
}

func TestBytesAndStringCodecs(t *testing.T) {
	raw := []byte{0x00, 0x01, 0xff}
	wire, err := Pack[[]byte](Bytes{}, raw)
	if err != nil {
		t.Fatalf("Pack bytes: %v", err)
	}
	back, err := Unpack[[]byte](Bytes{}, wire)
	if err != nil {
		t.Fatalf("Unpack bytes: %v", err)
	}
	if !reflect.DeepEqual(back, raw) {
		t.Fatalf("bytes round trip: got %x want %x", back, raw)
	}

	s, err := Pack[string](String{}, "hello")
	if err != nil {
		t.Fatalf("Pack string: %v", err)
	}
	got, err := Unpack[string](String{}, s)
	if err != nil || got != "hello" {
		t.Fatalf("string round trip: got %q err %v", got, err)
	}
}
