package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  asha  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "asha", got)
	require.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("asha"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "asha", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(r, "Enter username", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret1"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret1"), pw)
	require.Contains(t, out.String(), "Enter password")
}
