package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("sekret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "sekret", hashed)

	require.True(t, CheckPassword(hashed, "sekret"))
	require.False(t, CheckPassword(hashed, "wrong"))

	again, err := HashPassword("sekret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, hashed, again, "hashes are salted")
}

func TestHashPassword_RejectsOversizedPassword(t *testing.T) {
	_, err := HashPassword(string(bytes.Repeat([]byte("a"), 73)), bcrypt.MinCost)
	require.Error(t, err)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"likes": 4}))
	require.Equal(t, "{\n\t\"likes\": 4\n}\n", buf.String())

	require.Error(t, PrintJSON(&buf, make(chan int)))
}
