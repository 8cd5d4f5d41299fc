package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// digestState runs one Merkle-Damgard digest over the concatenated
// canonical bytes of a row. Nulls are skipped, so a row of all nulls
// yields the digest of empty input.
type digestState struct {
	h hash.Hash
}

func newDigestState(a Algorithm) *digestState {
	var h hash.Hash
	switch a {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	case SHA224:
		h = sha256.New224()
	case SHA256:
		h = sha256.New()
	case SHA384:
		h = sha512.New384()
	case SHA512:
		h = sha512.New()
	default:
		panic("hasher: not a digest algorithm: " + a.String())
	}
	return &digestState{h: h}
}

func (s *digestState) Reset() { s.h.Reset() }

func (s *digestState) Update(p []byte) {
	if len(p) == 0 {
		return
	}
	s.h.Write(p) //nolint:errcheck // hash.Hash.Write never fails
}

func (s *digestState) Sum(dst []byte) []byte { return s.h.Sum(dst) }
