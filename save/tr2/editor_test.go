package tr2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save"
)

func TestEditor_ReadDecodesSlot(t *testing.T) {
	b := newSlot(t, 1)
	l := Resolve(1, types.PlatformPC)
	data := b.Bytes()
	require.NoError(t, save.WriteI32(b, SaveNumberOffset, 42))
	data[GameModeOffset] = 1
	data[l.SmallMedipacks] = 2
	data[l.LargeMedipacks] = 1
	data[l.Flares] = 6
	data[l.WeaponsConfig] = 1 + flagPistols + flagShotgun
	require.NoError(t, save.WriteU16(b, l.Ammo[Shotgun], 24))
	require.NoError(t, save.WriteU16(b, l.Ammo[M16], 120))
	plantHealth(t, b, l.Health.Min, 800, standing)

	s, err := NewEditor(b, 0, types.PlatformPC).Read()
	require.NoError(t, err)

	assert.True(t, s.Supported)
	assert.Equal(t, "The Great Wall", s.LevelName)
	assert.Equal(t, types.GameModePlus, s.Mode)
	assert.Equal(t, int32(42), s.SaveNumber)
	assert.Equal(t, uint8(2), s.SmallMedipacks)
	assert.Equal(t, uint8(1), s.LargeMedipacks)
	assert.Equal(t, uint8(6), s.Flares)
	assert.True(t, s.Weapons.Has(Shotgun))
	assert.False(t, s.Weapons.Has(Uzis))
	assert.Equal(t, uint16(4), s.Ammo[Shotgun], "shotgun ammo is reported in shells")
	assert.Equal(t, uint16(120), s.Ammo[M16])
	assert.True(t, s.HealthKnown)
	assert.Equal(t, uint16(800), s.Health)
	assert.Equal(t, "Standing", s.HealthState)
	assert.Equal(t, -1, s.SecondaryIndex)
}

func TestEditor_WriteRoundTrip(t *testing.T) {
	b := newSlot(t, 3)
	l := Resolve(3, types.PlatformPC)
	plantHealth(t, b, l.Health.Max, 100, standing)
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	s.SaveNumber = 7
	s.SmallMedipacks = 9
	s.Flares = 3
	s.Weapons[Pistols] = true
	s.Weapons[Uzis] = true
	s.Weapons[Shotgun] = true
	s.Ammo[Uzis] = 500
	s.Ammo[Shotgun] = 10
	s.Health = 999
	require.NoError(t, e.Write(s))

	assert.Equal(t, uint8(1+flagPistols+flagUzis+flagShotgun), b.Bytes()[l.WeaponsConfig])
	raw, err := save.ReadU16(b, l.Ammo[Shotgun])
	require.NoError(t, err)
	assert.Equal(t, uint16(60), raw, "shells are stored times six")

	got, err := e.Read()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestEditor_WriteMirrorsSecondary(t *testing.T) {
	b := newSlot(t, 1)
	plantSentinels(t, b, 1, 7, 0)
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	require.Equal(t, 7, s.SecondaryIndex)

	s.Weapons = WeaponSet{Uzis: true}
	s.Ammo[Uzis] = 200
	s.Ammo[M16] = 50
	require.NoError(t, e.Write(s))

	sec := Secondary{Index: 7, Base: 0x19BA}
	uziOff, _ := sec.Offset(Uzis)
	m16Off, _ := sec.Offset(M16)

	v, err := save.ReadU16(b, uziOff)
	require.NoError(t, err)
	assert.Equal(t, uint16(200), v, "present weapon is mirrored")

	v, err = save.ReadU16(b, m16Off)
	require.NoError(t, err)
	assert.Zero(t, v, "absent weapon zeroes its mirror")

	v, err = save.ReadU16(b, Resolve(1, types.PlatformPC).Ammo[M16])
	require.NoError(t, err)
	assert.Equal(t, uint16(50), v, "primary counter is always written")
}

func TestEditor_SetAmmo(t *testing.T) {
	b := newSlot(t, 1)
	plantSentinels(t, b, 1, 2, secondaryAltDelta)
	e := NewEditor(b, 0, types.PlatformPC)

	require.NoError(t, e.SetAmmo(HarpoonGun, true, 12))
	got, err := e.Ammo(HarpoonGun)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), got)

	off, _ := Secondary{Index: 2, Base: 0x19BA}.Offset(HarpoonGun)
	v, err := save.ReadU16(b, off)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), v)

	require.ErrorIs(t, e.SetAmmo(Pistols, true, 1), types.ErrInvalid)
}

func TestEditor_SetAmmoUnavailable(t *testing.T) {
	b := newSlot(t, LevelHomeSweetHome)
	l := Resolve(LevelHomeSweetHome, types.PlatformPC)
	require.NoError(t, save.WriteU16(b, l.Ammo[M16], 77))
	e := NewEditor(b, 0, types.PlatformPC)

	require.ErrorIs(t, e.SetAmmo(M16, true, 500), types.ErrInvalid)

	v, err := save.ReadU16(b, l.Ammo[M16])
	require.NoError(t, err)
	assert.Equal(t, uint16(77), v)

	require.NoError(t, e.SetAmmo(Shotgun, true, 12))
	got, err := e.Ammo(Shotgun)
	require.NoError(t, err)
	assert.Equal(t, uint16(12), got)
}

func TestEditor_RestrictedLevelLeavesOtherAmmo(t *testing.T) {
	b := newSlot(t, LevelHomeSweetHome)
	l := Resolve(LevelHomeSweetHome, types.PlatformPC)
	require.NoError(t, save.WriteU16(b, l.Ammo[M16], 77))
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	assert.Zero(t, s.Ammo[M16], "unavailable ammo reads as zero")

	s.Ammo[M16] = 300
	s.Ammo[Shotgun] = 2
	require.NoError(t, e.Write(s))

	v, err := save.ReadU16(b, l.Ammo[M16])
	require.NoError(t, err)
	assert.Equal(t, uint16(77), v, "unavailable ammo is not written")

	v, err = save.ReadU16(b, l.Ammo[Shotgun])
	require.NoError(t, err)
	assert.Equal(t, uint16(12), v)
}

func TestEditor_UnsupportedLevel(t *testing.T) {
	b := newSlot(t, 40)
	require.NoError(t, save.WriteI32(b, SaveNumberOffset, 3))
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	assert.False(t, s.Supported)
	assert.Equal(t, int32(3), s.SaveNumber)

	_, err = e.Layout()
	require.ErrorIs(t, err, types.ErrUnsupportedLevel)

	before := append([]byte(nil), b.Bytes()...)
	s.SaveNumber = 99
	require.ErrorIs(t, e.Write(s), types.ErrUnsupportedLevel)
	assert.Equal(t, before, b.Bytes(), "nothing is written for an unsupported level")
}

func TestEditor_HealthNotLocatable(t *testing.T) {
	b := newSlot(t, 4)
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	assert.False(t, s.HealthKnown)

	_, err = e.Health()
	require.ErrorIs(t, err, types.ErrNotLocatable)
	require.ErrorIs(t, e.SetHealth(500), types.ErrNotLocatable)

	// A stale HealthKnown state is skipped once the field cannot be found.
	s.HealthKnown = true
	s.Health = 500
	require.NoError(t, e.Write(s))
}

func TestEditor_ValidatesBeforeWriting(t *testing.T) {
	b := newSlot(t, 1)
	l := Resolve(1, types.PlatformPC)
	plantHealth(t, b, l.Health.Min, 300, standing)
	e := NewEditor(b, 0, types.PlatformPC)

	s, err := e.Read()
	require.NoError(t, err)
	before := append([]byte(nil), b.Bytes()...)

	bad := s
	bad.SaveNumber = 5
	bad.Health = 1001
	require.ErrorIs(t, e.Write(bad), types.ErrInvalid)

	bad = s
	bad.Ammo = map[Weapon]uint16{Shotgun: 20000}
	require.ErrorIs(t, e.Write(bad), types.ErrInvalid)

	assert.Equal(t, before, b.Bytes())
	require.ErrorIs(t, e.SetHealth(0), types.ErrInvalid)
	require.NoError(t, e.SetHealth(1))

	m, err := e.Health()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), m.Value)
}
