package hashing

import (
	"context"
	"crypto/md5" // #nosec G501 -- digest identifies typed code, not a security boundary
	"encoding/hex"
	"strings"
	"unicode"
)

// builtinDigestLen matches the six hex digits printed by the contest hash scripts.
const builtinDigestLen = 6

// Builtin is an in-process Func for machines without the hash scripts. It
// ignores all whitespace and returns the first six hex digits of the MD5 sum.
// The dialect is ignored.
func Builtin(_ context.Context, _ string, region []byte) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(region))
	sum := md5.Sum([]byte(compact)) // #nosec G401
	return hex.EncodeToString(sum[:])[:builtinDigestLen], nil
}
