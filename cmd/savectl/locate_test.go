package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save/tr2"
	"github.com/joshuapare/savekit/save/tr5"
)

func TestLocateCommand(t *testing.T) {
	path := writeContainer(t, tr2.Profile, map[int]slotFixture{
		0: {level: 1, saveNumber: 3, health: 800, mirrored: true, secondary: 4},
		1: {level: 4, saveNumber: 5},
		2: {level: 99, saveNumber: 6},
	})

	t.Run("health and secondary found", func(t *testing.T) {
		resetFlags(t)
		output, err := captureOutput(t, func() error { return runLocate([]string{path, "0"}) })
		require.NoError(t, err)
		assertContains(t, output, []string{
			"The Great Wall (1)",
			"Health: 800",
			"Standing",
			"Secondary ammo index: 4",
			"uzis",
		})
	})

	t.Run("nothing found", func(t *testing.T) {
		resetFlags(t)
		output, err := captureOutput(t, func() error { return runLocate([]string{path, "1"}) })
		require.NoError(t, err)
		assertContains(t, output, []string{"Health: not locatable", "Secondary ammo: none"})
	})

	t.Run("unsupported level", func(t *testing.T) {
		resetFlags(t)
		output, err := captureOutput(t, func() error { return runLocate([]string{path, "2"}) })
		require.NoError(t, err)
		assertContains(t, output, []string{"unknown (99)", "Health: not locatable"})
	})

	t.Run("json offsets", func(t *testing.T) {
		resetFlags(t)
		jsonOut = true
		output, err := captureOutput(t, func() error { return runLocate([]string{path, "0"}) })
		require.NoError(t, err)

		var res locateResult
		assertJSON(t, output, &res)
		slotOff := tr2.Profile.SlotOffset(0)
		assert.True(t, res.HealthFound)
		assert.Equal(t, slotOff+tr2.Resolve(1, types.PlatformPC).Health.Min, res.HealthOffset)
		assert.Equal(t, res.HealthOffset-slotOff, res.HealthRelative)
		assert.Equal(t, uint16(800), res.Health)
		assert.True(t, res.SecondaryFound)
		assert.Equal(t, 4, res.SecondaryIndex)

		q, _ := tr2.SecondaryQuad(1, types.PlatformPC)
		want, _ := tr2.Secondary{Index: 4, Base: q[0]}.Offset(tr2.M16)
		assert.Equal(t, slotOff+want, res.SecondaryOffset["m16"])
		assert.Len(t, res.SecondaryOffset, len(tr2.AmmoWeapons))
	})
}

func TestLocateCommand_TR5(t *testing.T) {
	resetFlags(t)
	settings.Title = types.TitleTR5
	jsonOut = true
	path := writeContainer(t, tr5.Profile, map[int]slotFixture{
		0: {level: 2, saveNumber: 1, health: 333},
	})

	output, err := captureOutput(t, func() error { return runLocate([]string{path, "0"}) })
	require.NoError(t, err)

	var res locateResult
	assertJSON(t, output, &res)
	assert.True(t, res.HealthFound)
	assert.Equal(t, uint16(333), res.Health)
	assert.False(t, res.SecondaryFound)
	assert.Equal(t, -1, res.SecondaryIndex)
}
