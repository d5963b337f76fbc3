package tr5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/savekit/pkg/types"
)

func TestResolve(t *testing.T) {
	for level := range levelNames {
		l := Resolve(level)
		require.True(t, l.Supported, "level %d", level)
		assert.LessOrEqual(t, l.Health.Min, l.Health.Max)
		assert.Greater(t, l.Health.Min, SmallMedipacksOffset)
	}

	l := Resolve(13)
	assert.False(t, l.Supported)
	assert.Zero(t, l.Features)
}

func TestResolve_Features(t *testing.T) {
	tests := []struct {
		level uint8
		has   []Feature
		not   []Feature
	}{
		{1, []Feature{FeatureRevolver, FeatureUziAmmo, FeatureShotgunAmmo, FeatureFlares}, []Feature{FeatureUzi, FeatureShotgun, FeatureDeagle}},
		{4, []Feature{FeatureDeagle, FeatureUzi}, []Feature{FeatureShotgun, FeatureShotgunAmmo, FeatureRevolver}},
		{7, []Feature{FeatureDeagle, FeatureShotgun}, []Feature{FeatureRevolver, FeatureHK}},
		{9, nil, []Feature{FeaturePistols, FeatureFlares}},
		{14, []Feature{FeatureHK, FeatureGrappling}, []Feature{FeatureFlares}},
	}
	for _, tt := range tests {
		f := Resolve(tt.level).Features
		for _, h := range tt.has {
			assert.True(t, f.Has(h), "level %d has %s", tt.level, h)
		}
		for _, n := range tt.not {
			assert.False(t, f.Has(n), "level %d lacks %s", tt.level, n)
		}
	}
	assert.Equal(t, "none", Resolve(8).Features.String())
	assert.Equal(t, "hk,grappling", Resolve(14).Features.String())
}

func TestPresenceFlag(t *testing.T) {
	assert.Equal(t, FlagAbsent, PresenceFlag(HK, false, FlagWithSilencer))
	assert.Equal(t, FlagWithSilencer, PresenceFlag(HK, true, FlagAbsent))
	assert.Equal(t, FlagWithSight, PresenceFlag(HK, true, FlagWithSight))
	assert.Equal(t, FlagWithSight, PresenceFlag(Revolver, true, FlagAbsent))
	assert.Equal(t, FlagPresent, PresenceFlag(Deagle, true, FlagPresent))
	assert.Equal(t, FlagWithSight, PresenceFlag(Grappling, true, FlagPresent))
	assert.Equal(t, FlagPresent, PresenceFlag(Shotgun, true, FlagWithSight))
}

func TestParseAmmo(t *testing.T) {
	a, err := ParseAmmo("shotgun-wideshot")
	require.NoError(t, err)
	assert.Equal(t, ShotgunWideshotAmmo, a)

	_, err = ParseAmmo("rocket")
	require.ErrorIs(t, err, types.ErrInvalid)

	w, err := ParseWeapon("HK")
	require.NoError(t, err)
	assert.Equal(t, HK, w)

	_, err = ParseWeapon("rocket-launcher")
	require.ErrorIs(t, err, types.ErrInvalid)
	assert.Contains(t, err.Error(), `"rocket_launcher"`)
}

func TestLayout_Offers(t *testing.T) {
	tests := []struct {
		level   uint8
		offered []Weapon
		absent  []Weapon
	}{
		{1, []Weapon{Pistols, Revolver, HK}, []Weapon{Deagle}},
		{4, []Weapon{Deagle, Uzi}, []Weapon{Revolver}},
		{9, []Weapon{Pistols, Grappling}, []Weapon{Revolver, Deagle}},
		{13, nil, []Weapon{Pistols, Revolver, Deagle}},
	}
	for _, tt := range tests {
		l := Resolve(tt.level)
		for _, w := range tt.offered {
			assert.True(t, l.Offers(w), "level %d offers %s", tt.level, w)
		}
		for _, w := range tt.absent {
			assert.False(t, l.Offers(w), "level %d lacks %s", tt.level, w)
		}
	}

	assert.True(t, Resolve(1).OffersAmmo(RevolverAmmo))
	assert.False(t, Resolve(1).OffersAmmo(DeagleAmmo))
	assert.True(t, Resolve(4).OffersAmmo(DeagleAmmo))
	assert.True(t, Resolve(8).OffersAmmo(UziAmmo))
	assert.False(t, Resolve(8).OffersAmmo(RevolverAmmo))
}

func TestScanner_ByteGranular(t *testing.T) {
	b := newSlot(t, 11)
	l := Resolve(11)
	plantHealth(t, b, l.Health.Min+1, 42, [4]byte{0x47, 0x47, 0x00, 0xDE})

	m, err := Scanner.Locate(b.Bytes(), 0, l.Health)
	require.NoError(t, err)
	assert.Equal(t, l.Health.Min+1, m.Offset)
	assert.Equal(t, "Crouching", m.Signature.State)
	assert.False(t, m.Signature.Vehicle)
}
