package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/savekit/internal/format"
	"github.com/joshuapare/savekit/pkg/types"
	"github.com/joshuapare/savekit/save/tr2"
	"github.com/joshuapare/savekit/save/tr5"
)

// Field names accepted by get and set:
//
//	save_number, small_medipacks, large_medipacks, flares, health
//	secrets                      (tr5)
//	weapon.<name>=true|false
//	ammo.<name>=<count>          shotgun counters are in shells

// headerFieldCount is the number of leading fields every state reports,
// supported level or not.
const headerFieldCount = 3

type field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func lookupField(fields []field, name string) (field, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return field{}, false
}

func healthValue(known bool, v uint16) string {
	if !known {
		return "unavailable"
	}
	return strconv.Itoa(int(v))
}

func tr2Fields(st tr2.State) []field {
	fs := []field{
		{"level", strconv.Itoa(int(st.Level))},
		{"mode", st.Mode.String()},
		{"save_number", strconv.Itoa(int(st.SaveNumber))},
	}
	if !st.Supported {
		return fs
	}
	fs = append(fs,
		field{"small_medipacks", strconv.Itoa(int(st.SmallMedipacks))},
		field{"large_medipacks", strconv.Itoa(int(st.LargeMedipacks))},
		field{"flares", strconv.Itoa(int(st.Flares))},
		field{"health", healthValue(st.HealthKnown, st.Health)},
	)
	for _, w := range tr2.Weapons {
		fs = append(fs, field{"weapon." + w.String(), strconv.FormatBool(st.Weapons.Has(w))})
	}
	for _, w := range tr2.AmmoWeapons {
		fs = append(fs, field{"ammo." + w.String(), strconv.Itoa(int(st.Ammo[w]))})
	}
	return fs
}

func tr5Fields(st tr5.State) []field {
	fs := []field{
		{"level", strconv.Itoa(int(st.Level))},
		{"mode", st.Mode.String()},
		{"save_number", strconv.Itoa(int(st.SaveNumber))},
	}
	if !st.Supported {
		return fs
	}
	fs = append(fs,
		field{"small_medipacks", strconv.Itoa(int(st.SmallMedipacks))},
		field{"large_medipacks", strconv.Itoa(int(st.LargeMedipacks))},
		field{"flares", strconv.Itoa(int(st.Flares))},
		field{"secrets", strconv.Itoa(int(st.Secrets))},
		field{"health", healthValue(st.HealthKnown, st.Health)},
	)
	for _, w := range tr5.Weapons {
		fs = append(fs, field{"weapon." + w.String(), strconv.FormatBool(st.Weapons[w])})
	}
	for _, a := range tr5.AmmoTypes {
		fs = append(fs, field{"ammo." + a.String(), strconv.Itoa(int(st.Ammo[a]))})
	}
	return fs
}

func parseUint(name, v string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 0, bits)
	if err != nil {
		return 0, types.Invalid("%s: %q is not an unsigned %d-bit value", name, v, bits)
	}
	return n, nil
}

func parseBool(name, v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "0", "f", "false", "no", "off":
		return false, nil
	}
	return false, types.Invalid("%s: %q is not a boolean", name, v)
}

func parseSaveNumber(v string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 32)
	if err != nil || n < 0 {
		return 0, types.Invalid("save_number: %q is not a non-negative 32-bit value", v)
	}
	return int32(n), nil
}

func parseHealth(known bool, v string) (uint16, error) {
	if !known {
		return 0, types.NotLocatable("health")
	}
	n, err := parseUint("health", v, 16)
	if err != nil {
		return 0, err
	}
	if !format.ValidHealth(uint16(n)) {
		return 0, types.Invalid("health %d outside %d..%d", n, format.MinHealth, format.MaxHealth)
	}
	return uint16(n), nil
}

// splitAssignment splits "name=value".
func splitAssignment(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", types.Invalid("assignment %q is not name=value", s)
	}
	return strings.ToLower(strings.TrimSpace(name)), value, nil
}

func applyTR2(st *tr2.State, name, v string) error {
	if !st.Supported {
		return types.UnsupportedLevel(st.Level)
	}
	switch name {
	case "save_number":
		n, err := parseSaveNumber(v)
		st.SaveNumber = n
		return err
	case "small_medipacks", "large_medipacks", "flares":
		n, err := parseUint(name, v, 8)
		if err != nil {
			return err
		}
		switch name {
		case "small_medipacks":
			st.SmallMedipacks = uint8(n)
		case "large_medipacks":
			st.LargeMedipacks = uint8(n)
		default:
			st.Flares = uint8(n)
		}
		return nil
	case "health":
		n, err := parseHealth(st.HealthKnown, v)
		if err != nil {
			return err
		}
		st.Health = n
		return nil
	}

	kind, rest, _ := strings.Cut(name, ".")
	w, err := tr2.ParseWeapon(rest)
	if err != nil {
		return types.Invalid("unknown tr2 field %q", name)
	}
	switch kind {
	case "weapon":
		on, err := parseBool(name, v)
		if err != nil {
			return err
		}
		st.Weapons[w] = on
		return nil
	case "ammo":
		if _, ok := st.Ammo[w]; !ok {
			return types.Invalid("%s has no ammo counter", w)
		}
		if !st.Available(w) {
			return types.Invalid("%s ammo is not available on level %d", w, st.Level)
		}
		n, err := parseUint(name, v, 16)
		if err != nil {
			return err
		}
		if w == tr2.Shotgun {
			if _, ok := format.ShellsToAmmo(uint16(n)); !ok {
				return types.Invalid("%s: %d shells overflow the ammo counter", name, n)
			}
		}
		st.Ammo[w] = uint16(n)
		return nil
	}
	return types.Invalid("unknown tr2 field %q", name)
}

func applyTR5(st *tr5.State, name, v string) error {
	if !st.Supported {
		return types.UnsupportedLevel(st.Level)
	}
	switch name {
	case "save_number":
		n, err := parseSaveNumber(v)
		st.SaveNumber = n
		return err
	case "small_medipacks", "large_medipacks", "flares":
		if name == "flares" && !st.Features.Has(tr5.FeatureFlares) {
			return types.Invalid("flares are not available on level %d", st.Level)
		}
		n, err := parseUint(name, v, 16)
		if err != nil {
			return err
		}
		switch name {
		case "small_medipacks":
			st.SmallMedipacks = uint16(n)
		case "large_medipacks":
			st.LargeMedipacks = uint16(n)
		default:
			st.Flares = uint16(n)
		}
		return nil
	case "secrets":
		n, err := parseUint(name, v, 8)
		st.Secrets = uint8(n)
		return err
	case "health":
		n, err := parseHealth(st.HealthKnown, v)
		if err != nil {
			return err
		}
		st.Health = n
		return nil
	}

	kind, rest, _ := strings.Cut(name, ".")
	switch kind {
	case "weapon":
		w, err := tr5.ParseWeapon(rest)
		if err != nil {
			return err
		}
		if !st.Offers(w) {
			return types.Invalid("%s is not available on level %d", w, st.Level)
		}
		on, err := parseBool(name, v)
		if err != nil {
			return err
		}
		st.Weapons[w] = on
		return nil
	case "ammo":
		a, err := tr5.ParseAmmo(rest)
		if err != nil {
			return err
		}
		if !st.OffersAmmo(a) {
			return types.Invalid("%s ammo is not available on level %d", a, st.Level)
		}
		n, err := parseUint(name, v, 16)
		if err != nil {
			return err
		}
		if a == tr5.ShotgunNormalAmmo || a == tr5.ShotgunWideshotAmmo {
			if _, ok := format.ShellsToAmmo(uint16(n)); !ok {
				return types.Invalid("%s: %d shells overflow the ammo counter", name, n)
			}
		}
		st.Ammo[a] = uint16(n)
		return nil
	}
	return types.Invalid("unknown tr5 field %q", name)
}

// fieldsOf flattens a decoded state.
func fieldsOf(state any) []field {
	switch st := state.(type) {
	case tr2.State:
		return tr2Fields(st)
	case tr5.State:
		return tr5Fields(st)
	}
	panic(fmt.Sprintf("savectl: unexpected state %T", state))
}
