package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "query")
	assert.Contains(t, names, "info")
}

func TestReadItems(t *testing.T) {
	in := strings.NewReader("alpha\n\nbeta\ngamma\n")
	items, err := readItems(in)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, []byte("alpha"), items[0])
	assert.Equal(t, []byte("beta"), items[1])
	assert.Equal(t, []byte("gamma"), items[2])
}

func TestReadItemsEmpty(t *testing.T) {
	items, err := readItems(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func writeItemsFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreateThenQuery(t *testing.T) {
	db := filepath.Join(t.TempDir(), "filters.db")
	itemsFile := writeItemsFile(t, "apple", "banana", "cherry")

	out, err := runCmd(t, "--db", db, "create", "--rate", "0.001", itemsFile)
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.Equal(t, "1", id)

	probesFile := writeItemsFile(t, "apple", "durian", "cherry")
	out, err = runCmd(t, "--db", db, "query", "--verdict-only", id, probesFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "true", lines[0])
	assert.Equal(t, "false", lines[1])
	assert.Equal(t, "true", lines[2])
}

func TestQueryUnknownID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "filters.db")
	probesFile := writeItemsFile(t, "anything")

	_, err := runCmd(t, "--db", db, "query", "99", probesFile)
	require.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "filters.db")
	itemsFile := writeItemsFile(t, "one", "two", "three")

	out, err := runCmd(t, "--db", db, "create", itemsFile)
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	out, err = runCmd(t, "--db", db, "info", id)
	require.NoError(t, err)
	assert.Contains(t, out, "items:         3")
	assert.Contains(t, out, "hashes (k):")
}

func TestCreateInvalidRate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "filters.db")
	itemsFile := writeItemsFile(t, "one")

	_, err := runCmd(t, "--db", db, "create", "--rate", "0", itemsFile)
	require.Error(t, err)
}
