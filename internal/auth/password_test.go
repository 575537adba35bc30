package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery staple", digest))
	assert.False(t, VerifyPassword("correct horse battery stapl", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestHashPasswordUniqueDigests(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	// Random salt: identical inputs must not share a digest.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same input", first))
	assert.True(t, VerifyPassword("same input", second))
}

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	digest, err := HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotContains(t, digest, "supersecret")
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	cases := []string{
		"",
		"not a digest",
		"$argon2id$v=19$m=65536,t=1,p=4$tooFewParts",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",      // wrong variant
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",     // wrong version
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA",         // zeroed params
		"$argon2id$v=19$m=65536,t=1,p=4$!!notb64!!$aGFzaA", // corrupt salt
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!notb64!!", // corrupt hash
	}

	for _, digest := range cases {
		assert.False(t, VerifyPassword("anything", digest), "digest %q must fail closed", digest)
	}
}
