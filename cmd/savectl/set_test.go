package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
	"github.com/joshuapare/savekit/save/tr2"
	"github.com/joshuapare/savekit/save/tr5"
)

func readTR2(t *testing.T, path string, slot int) tr2.State {
	t.Helper()
	st, err := tr2.NewEditor(save.NewFile(path), tr2.Profile.SlotOffset(slot), types.PlatformPC).Read()
	require.NoError(t, err)
	return st
}

func TestSetCommand_TR2(t *testing.T) {
	resetFlags(t)
	path := writeContainer(t, tr2.Profile, map[int]slotFixture{
		0: {level: 1, saveNumber: 3, health: 800},
	})

	output, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{
			path, "0",
			"health=1000",
			"small_medipacks=3",
			"weapon.uzis=true",
			"ammo.uzis=500",
			"ammo.shotgun=12",
		})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Updated slot 0", "health = 1000", "ammo.uzis = 500"})
	assertNotContains(t, output, []string{"Backup created"})

	st := readTR2(t, path, 0)
	assert.Equal(t, uint16(1000), st.Health)
	assert.Equal(t, uint8(3), st.SmallMedipacks)
	assert.True(t, st.Weapons.Has(tr2.Uzis))
	assert.Equal(t, uint16(500), st.Ammo[tr2.Uzis])
	assert.Equal(t, uint16(12), st.Ammo[tr2.Shotgun])
	assert.Equal(t, int32(3), st.SaveNumber, "untouched fields keep their value")

	_, err = os.Stat(path + save.BackupSuffix)
	assert.True(t, os.IsNotExist(err))
}

func TestSetCommand_BackupAndJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	setBackup = true
	path := writeContainer(t, tr2.Profile, map[int]slotFixture{
		0: {level: 2, saveNumber: 1},
	})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	output, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{path, "0", "flares=9"})
	})
	require.NoError(t, err)

	var res map[string]any
	assertJSON(t, output, &res)
	assert.Equal(t, path+save.BackupSuffix, res["backup"])
	assert.Greater(t, res["bytes"], float64(0))
	assert.NotEmpty(t, res["ranges"])
	assert.Equal(t, false, res["synced"])

	bak, err := os.ReadFile(path + save.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, before, bak, "backup holds the container as it was before the edit")
	assert.Equal(t, uint8(9), readTR2(t, path, 0).Flares)
}

func TestSetCommand_Durable(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	setDurable = true
	path := writeContainer(t, tr2.Profile, map[int]slotFixture{
		0: {level: 2, saveNumber: 1},
	})

	output, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{path, "0", "large_medipacks=2"})
	})
	require.NoError(t, err)

	var res map[string]any
	assertJSON(t, output, &res)
	assert.Equal(t, true, res["synced"])
}

func TestSetCommand_RejectsBeforeWriting(t *testing.T) {
	path := writeContainer(t, tr2.Profile, map[int]slotFixture{
		0: {level: 1, saveNumber: 3, health: 800},
		1: {level: 99, saveNumber: 4},
		2: {level: 4, saveNumber: 5},
		3: {level: tr2.LevelHomeSweetHome, saveNumber: 6},
	})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "health above max", args: []string{path, "0", "small_medipacks=4", "health=1001"}, wantErr: types.ErrInvalid},
		{name: "health zero", args: []string{path, "0", "health=0"}, wantErr: types.ErrInvalid},
		{name: "medipacks overflow", args: []string{path, "0", "small_medipacks=256"}, wantErr: types.ErrInvalid},
		{name: "shell overflow", args: []string{path, "0", "ammo.shotgun=11000"}, wantErr: types.ErrInvalid},
		{name: "negative save number", args: []string{path, "0", "save_number=-1"}, wantErr: types.ErrInvalid},
		{name: "pistols have no ammo", args: []string{path, "0", "ammo.pistols=5"}, wantErr: types.ErrInvalid},
		{name: "not an assignment", args: []string{path, "0", "flares"}, wantErr: types.ErrInvalid},
		{name: "unsupported level", args: []string{path, "1", "flares=1"}, wantErr: types.ErrUnsupportedLevel},
		{name: "health not locatable", args: []string{path, "2", "health=10"}, wantErr: types.ErrNotLocatable},
		{name: "ammo not offered by level", args: []string{path, "3", "ammo.m16=500"}, wantErr: types.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			setBackup = true
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			_, err = captureOutput(t, func() error { return runSet(context.Background(), tt.args) })
			require.ErrorIs(t, err, tt.wantErr)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
			_, err = os.Stat(path + save.BackupSuffix)
			assert.True(t, os.IsNotExist(err), "no backup is taken for a rejected edit")
		})
	}
}

func TestSetCommand_TR5(t *testing.T) {
	resetFlags(t)
	settings.Title = types.TitleTR5
	path := writeContainer(t, tr5.Profile, map[int]slotFixture{
		0: {level: 1, saveNumber: 3},
		1: {level: 14, saveNumber: 4},
	})

	_, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{
			path, "0", "flares=5", "weapon.revolver=true", "ammo.revolver=30", "ammo.shotgun_wideshot=4", "secrets=2",
		})
	})
	require.NoError(t, err)

	st, err := tr5.NewEditor(save.NewFile(path), tr5.Profile.SlotOffset(0)).Read()
	require.NoError(t, err)
	assert.Equal(t, uint16(5), st.Flares)
	assert.True(t, st.Weapons[tr5.Revolver])
	assert.Equal(t, uint16(30), st.Ammo[tr5.RevolverAmmo])
	assert.Equal(t, uint16(4), st.Ammo[tr5.ShotgunWideshotAmmo])
	assert.Equal(t, uint8(2), st.Secrets)

	_, err = captureOutput(t, func() error {
		return runSet(context.Background(), []string{path, "1", "flares=5"})
	})
	require.ErrorIs(t, err, types.ErrInvalid, "Red Alert! has no flares")
}

func TestSetCommand_TR5RejectsSidearmOfOtherLevels(t *testing.T) {
	path := writeContainer(t, tr5.Profile, map[int]slotFixture{
		0: {level: 4, saveNumber: 3},
		1: {level: 8, saveNumber: 4},
	})

	tests := []struct {
		name string
		args []string
	}{
		{name: "revolver on a deagle level", args: []string{path, "0", "weapon.revolver=true"}},
		{name: "revolver ammo on a deagle level", args: []string{path, "0", "ammo.revolver=30"}},
		{name: "deagle without a sidearm", args: []string{path, "1", "weapon.deagle=true"}},
		{name: "deagle ammo without a sidearm", args: []string{path, "1", "ammo.deagle=30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			settings.Title = types.TitleTR5
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			_, err = captureOutput(t, func() error { return runSet(context.Background(), tt.args) })
			require.ErrorIs(t, err, types.ErrInvalid)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}

	resetFlags(t)
	settings.Title = types.TitleTR5
	_, err := captureOutput(t, func() error {
		return runSet(context.Background(), []string{path, "0", "weapon.deagle=true", "ammo.deagle=30"})
	})
	require.NoError(t, err)
	st, err := tr5.NewEditor(save.NewFile(path), tr5.Profile.SlotOffset(0)).Read()
	require.NoError(t, err)
	assert.True(t, st.Weapons[tr5.Deagle])
	assert.Equal(t, uint16(30), st.Ammo[tr5.DeagleAmmo])
}
