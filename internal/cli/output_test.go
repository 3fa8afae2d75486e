package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-prompt-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func TestFolderTree(t *testing.T) {
	folders := []models.Folder{
		{ID: "c", Name: "Child", ParentID: ptr("b")},
		{ID: "b", Name: "Beta"},
		{ID: "a", Name: "Alpha"},
		{ID: "o", Name: "Orphan", ParentID: ptr("gone")},
	}

	got := folderTree(folders)

	names := make([]string, 0, len(got))
	depths := make([]int, 0, len(got))
	for _, n := range got {
		names = append(names, n.folder.Name)
		depths = append(depths, n.depth)
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Child", "Orphan"}, names)
	assert.Equal(t, []int{0, 0, 1, 0}, depths, "папка без родителя в списке показывается в корне")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "short", in: "hello", width: 10, want: "hello"},
		{name: "cut", in: "hello world", width: 6, want: "hello…"},
		{name: "first line only", in: "one\ntwo", width: 10, want: "one"},
		{name: "runes", in: "привет мир", width: 7, want: "привет…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.width))
		})
	}
}

func TestSyncState(t *testing.T) {
	now := time.Now()
	before := now.Add(-time.Minute)
	owner := ptr("owner-1")

	assert.Equal(t, "local", syncState(nil, now, nil))
	assert.Equal(t, "pending", syncState(owner, now, nil))
	assert.Equal(t, "pending", syncState(owner, now, &before))
	assert.Equal(t, "synced", syncState(owner, before, &now))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, "tag", []string{"ID", "NAME"}, nil)
	assert.Contains(t, buf.String(), "No tags found.")

	buf.Reset()
	printTable(&buf, "tag", []string{"ID", "NAME"}, [][]string{{"1", "alpha"}, {"2", "beta"}})
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "Total: 2 tag(s)")
}
