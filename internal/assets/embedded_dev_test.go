// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build dev

package assets

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_IndependentOfWorkingDirectory(t *testing.T) {
	require.True(t, filepath.IsAbs(staticDir))

	t.Chdir(t.TempDir())

	_, err := fs.Stat(FS(), "css/styles.css")
	assert.NoError(t, err)
}
