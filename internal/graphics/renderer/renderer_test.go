package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesLeaveCullingOff(t *testing.T) {
	assert.Contains(t, Capabilities, uint32(gl.DEPTH_TEST))
	assert.NotContains(t, Capabilities, uint32(gl.CULL_FACE))
}
