package tr2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
)

func TestWeaponSet_Encode(t *testing.T) {
	set := WeaponSet{Pistols: true, Uzis: true}
	assert.Equal(t, uint8(11), set.Encode())
	assert.Equal(t, uint8(1), WeaponSet{}.Encode())

	all := WeaponSet{}
	for _, w := range Weapons {
		all[w] = true
	}
	assert.Equal(t, uint8(255), all.Encode())
}

func TestDecodeWeapons(t *testing.T) {
	set := DecodeWeapons(11)
	assert.True(t, set.Has(Pistols))
	assert.True(t, set.Has(Uzis))
	assert.False(t, set.Has(AutoPistols))
	assert.False(t, set.Has(Shotgun))
	assert.Len(t, set, len(Weapons))

	for _, w := range Weapons {
		assert.False(t, DecodeWeapons(1).Has(w), "config byte 1 means no weapons")
	}
	assert.Equal(t, uint8(1+16+128), DecodeWeapons(1+16+128).Encode())
}

func TestParseWeapon(t *testing.T) {
	w, err := ParseWeapon("Grenade-Launcher")
	require.NoError(t, err)
	assert.Equal(t, GrenadeLauncher, w)

	_, err = ParseWeapon("crossbow")
	require.ErrorIs(t, err, types.ErrInvalid)
}

func TestWeapon_JSONKeys(t *testing.T) {
	out, err := json.Marshal(map[Weapon]uint16{Shotgun: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shotgun":4}`, string(out))

	var back map[Weapon]uint16
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, uint16(4), back[Shotgun])
}
