//go:build windows

package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestFromWindows(t *testing.T) {
	wg, err := windows.GUIDFromString("{3D6FA8D0-FE05-11D0-9DDA-00C04FD7BA7C}")
	require.NoError(t, err)

	g := FromWindows(wg)
	assert.Equal(t, Process, g)
	assert.Equal(t, wg, g.Windows())
	assert.Equal(t, "{3D6FA8D0-FE05-11D0-9DDA-00C04FD7BA7C}", g.Windows().String())
}
