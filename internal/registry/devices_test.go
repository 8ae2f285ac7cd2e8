package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputmap/device"

	_ "github.com/Alia5/inputmap/internal/registry"
)

func TestBuiltinTypes(t *testing.T) {
	want := []string{
		"dualshock4", "eyes", "keyboard", "lefthand", "mouse", "righthand",
		"roomscale", "system", "textinput", "tracker", "xbox360",
	}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			d, err := device.Create(name, nil)
			assert.NoError(t, err)
			assert.NotNil(t, d)
		})
	}
	assert.Subset(t, device.Types(), want)
}
