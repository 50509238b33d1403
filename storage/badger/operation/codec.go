package operation

import (
	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/onflow/flow-governance/module/irrecoverable"
)

// encodeEntity encodes the given entity using msgpack and compresses the
// result with snappy.
// No errors are expected during normal operations.
func encodeEntity(entity interface{}) ([]byte, error) {
	val, err := msgpack.Marshal(entity)
	if err != nil {
		return nil, irrecoverable.NewExceptionf("could not encode entity: %w", err)
	}
	return snappy.Encode(nil, val), nil
}

// decodeValue decompresses a stored value and decodes it into the given
// entity. A value that fails either step was not written by encodeEntity.
// No errors are expected during normal operations.
func decodeValue(val []byte, entity interface{}) error {
	raw, err := snappy.Decode(nil, val)
	if err != nil {
		return irrecoverable.NewExceptionf("could not uncompress value: %w", err)
	}
	err = msgpack.Unmarshal(raw, entity)
	if err != nil {
		return irrecoverable.NewExceptionf("could not decode entity: %w", err)
	}
	return nil
}
