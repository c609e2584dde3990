package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsAndPrompts(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	text, err := GetSimpleText(reader, "Title", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", text)
	require.Contains(t, out.String(), "Title")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	text, err := GetSimpleText(reader, "Title", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", text)
}

func TestGetSimpleText_EmptyInputErrs(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Title", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", pw)
	require.Contains(t, out.String(), "Enter password:")
	require.NotContains(t, out.String(), "s3cret", "passwords are never echoed")
}

func TestGetMultiline_JoinsUntilEmptyLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("first\nsecond\n\nignored\n"))

	text, err := GetMultiline(reader, "Content", &out)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond", text)
}

func TestGetMultiline_ImmediateEmptyLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n"))

	text, err := GetMultiline(reader, "Content", &out)
	require.NoError(t, err)
	require.Empty(t, text)
}
