package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/u/.config/todo", GlobalConfigDir("/home/u/.config"))
	assert.Equal(t, "/home/u/.local/share/todo", DataDir("/home/u/.local/share"))
	assert.Equal(t, "/data/todo/storage.json", StoreFilePath("/data/todo"))
	assert.Equal(t, "/data/todo/logs/todo.log", LogPath("/data/todo"))
}
