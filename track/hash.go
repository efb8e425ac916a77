package track

import (
	"hash/fnv"
	"io"
	"strconv"
	"strings"
)

// HashEmail returns a stable one-way code for an email address so the
// raw address never reaches the analytics backend. FNV-1a: not a
// cryptographic digest, but the same email always produces the same
// code and distinct emails collide only with negligible probability.
func HashEmail(email string) string {
	h := fnv.New64a()
	_, _ = io.WriteString(h, strings.ToLower(strings.TrimSpace(email)))
	return strconv.FormatUint(h.Sum64(), 16)
}
