package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeHost_MultiLabel(t *testing.T) {
	encoded, err := EncodeHost("www.München.de")
	require.NoError(t, err)
	require.Equal(t, "www.xn--Mnchen-3ya.de", encoded)

	decoded, err := DecodeHost(encoded)
	require.NoError(t, err)
	require.Equal(t, "www.München.de", decoded)
}

func TestEncodeHost_AllASCIIUnchanged(t *testing.T) {
	encoded, err := EncodeHost("example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", encoded)
}
