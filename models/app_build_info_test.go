package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "", "deadbeef")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "deadbeef", info.BuildCommit())
}

func TestAppBuildInfo_VersionOr(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.VersionOr(""))
	assert.Equal(t, "2.0.0", info.VersionOr("2.0.0"))
}
