package talkgroup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

func TestReadCSV(t *testing.T) {
	in := "Talkgroup,Name,Country\n91,Worldwide,\n9990,Parrot,\n3100,USA,US\n"
	got, err := ReadCSV(strings.NewReader(in), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []RawRow{
		{Line: 2, ID: "91", Name: "Worldwide"},
		{Line: 3, ID: "9990", Name: "Parrot"},
		{Line: 4, ID: "3100", Name: "USA"},
	}, got)
}

func TestReadCSVHeaderAliases(t *testing.T) {
	for _, header := range []string{"ID,Name", "tg,NAME", "Talkgroup ID,Name", " TGID , Name "} {
		got, err := ReadCSV(strings.NewReader(header+"\n91,Worldwide\n"), ReadOptions{})
		require.NoError(t, err, header)
		require.Len(t, got, 1)
		assert.Equal(t, "91", got[0].ID)
		assert.Equal(t, "Worldwide", got[0].Name)
	}
}

func TestReadCSVMissingColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Number,Name\n91,Worldwide\n"), ReadOptions{})
	assert.True(t, errors.Is(err, ErrHeader))

	_, err = ReadCSV(strings.NewReader("ID,Label\n91,Worldwide\n"), ReadOptions{})
	assert.True(t, errors.Is(err, ErrHeader))

	_, err = ReadCSV(strings.NewReader(""), ReadOptions{})
	assert.True(t, errors.Is(err, ErrHeader))
}

func TestReadCSVShortRows(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("Name,ID\nWorldwide\n"), ReadOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].ID)

	res := Normalize(got, DefaultOptions())
	assert.Len(t, res.Skipped, 1)
}

func TestReadCSVDelimiter(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("ID;Name\n262;Deutschland\n"), ReadOptions{Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Deutschland", got[0].Name)
}

func TestReadCSVWindows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("ID,Name\n2321,Österreich\n")
	require.NoError(t, err)

	got, err := ReadCSV(strings.NewReader(raw), ReadOptions{Encoding: "windows-1252"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Österreich", got[0].Name)
}

func TestReadCSVBOMOverridesLabel(t *testing.T) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM).NewEncoder()
	raw, err := enc.String("ID,Name\n91,Worldwide\n")
	require.NoError(t, err)

	got, err := ReadCSV(bytes.NewReader([]byte(raw)), ReadOptions{Encoding: "windows-1252"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Worldwide", got[0].Name)

	got, err = ReadCSV(strings.NewReader("\ufeffID,Name\n91,Worldwide\n"), ReadOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "91", got[0].ID)
}

func TestReadCSVUnknownEncoding(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("ID,Name\n"), ReadOptions{Encoding: "klingon"})
	assert.Error(t, err)
}
