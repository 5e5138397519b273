package spc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySIA(t *testing.T) {
	for _, code := range []string{"CG", "OG", "BV", "CL", "NL", "OP", "ZG"} {
		require.Equal(t, TargetArea, ClassifySIA(code), "code %s", code)
	}

	for _, code := range []string{"ZO", "ZC", "ZX", "ZD", "ZM", "BA", "BB", "BU", "BR", "BC"} {
		require.Equal(t, TargetZone, ClassifySIA(code), "code %s", code)
	}

	for _, code := range []string{"ZZ", "", "XX", "og", "FA", "RP"} {
		require.Equal(t, TargetNone, ClassifySIA(code), "code %s", code)
	}
}
