package cyclingtrackerv1

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype used by cyclingtracker messages
// (content-type application/grpc+cbor).
const CodecName = "cbor"

// MaxMessageBytes is the largest message the tracker server receives. Every
// CBOR array element or map pair takes at least one byte, so decoding allows
// that many of each and the transport limit is the only cap on, for example,
// the number of measurements in one workout.
const MaxMessageBytes = 4 << 20

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cyclingtracker cbor enc mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: MaxMessageBytes,
		MaxMapPairs:      MaxMessageBytes,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cyclingtracker cbor dec mode: %v", err))
	}
	encoding.RegisterCodec(Codec{})
}

// Codec marshals cyclingtracker messages as deterministic CBOR.
type Codec struct{}

// Marshal encodes v.
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cbor unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the registered content subtype.
func (Codec) Name() string {
	return CodecName
}

// callOptions prefixes caller options with the cbor content subtype so the
// server selects the matching codec.
func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
}
