package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyDigest_KnownValues(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"YTREWQ", "a635e4c8cdd614ba9ef365544a009187"},
		{"password", "5f4dcc3b5aa765d61d8327deb882cf99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LegacyDigest([]byte(tt.password)))
	}
}

func TestHashPassword_ProducesBcryptDigest(t *testing.T) {
	digest, err := HashPassword([]byte("pass123"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(digest, "$2"), "digest should be bcrypt: %q", digest)

	ok, legacy := VerifyPassword(digest, []byte("pass123"))
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, legacy = VerifyPassword(digest, []byte("wrong"))
	assert.False(t, ok)
	assert.False(t, legacy)
}

func TestVerifyPassword_LegacyDigest(t *testing.T) {
	digest := LegacyDigest([]byte("secret"))

	ok, legacy := VerifyPassword(digest, []byte("secret"))
	assert.True(t, ok)
	assert.True(t, legacy)

	ok, legacy = VerifyPassword(digest, []byte("not-secret"))
	assert.False(t, ok)
	assert.True(t, legacy, "format flag should not depend on the match")
}
