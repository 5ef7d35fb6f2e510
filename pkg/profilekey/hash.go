package profilekey

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

const digestSize = 8

// HashToU64 hashes the text form of each part with BLAKE2b-64, writing a NUL byte after every
// part including the last, and reads the digest as a big-endian integer. The terminator keeps
// ("ab", "c") and ("a", "bc") apart.
func HashToU64(parts ...any) uint64 {
	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		// only reachable with an invalid digest size or key
		panic(err)
	}
	for _, part := range parts {
		h.Write([]byte(partText(part)))
		h.Write([]byte{0})
	}
	return binary.BigEndian.Uint64(h.Sum(nil))
}

func partText(part any) string {
	switch v := part.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
