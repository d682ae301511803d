package internal

import (
	"bytes"
	"hash/fnv"
)

type luxString struct {
	chars []byte
	hash  uint32
}

func makeLuxString(s string) luxString {
	chars := []byte(s)
	return luxString{
		chars: chars,
		hash:  hashBytes(chars),
	}
}

func hashBytes(b []byte) uint32 {
	h := fnv.New32a()
	h.Write(b)
	return h.Sum32()
}

// concat appends other to s in place and refreshes the cached hash.
func (s *luxString) concat(other *luxString) {
	chars := make([]byte, 0, len(s.chars)+len(other.chars))
	chars = append(chars, s.chars...)
	chars = append(chars, other.chars...)
	s.chars = chars
	s.hash = hashBytes(chars)
}

func (s *luxString) equals(other *luxString) bool {
	return s.hash == other.hash && bytes.Equal(s.chars, other.chars)
}

func (s *luxString) len() int {
	return len(s.chars)
}

func (s *luxString) String() string {
	return string(s.chars)
}
