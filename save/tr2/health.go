package tr2

import "github.com/joshuapare/savekit/save/health"

// consoleHealthShift moves every bracket bound on console builds.
const consoleHealthShift = -4

// healthBrackets are the empirically determined PC scan ranges per level.
var healthBrackets = map[uint8]health.Bracket{
	1:  {Min: 0xB64, Max: 0xBAC},   // The Great Wall
	2:  {Min: 0x7FA, Max: 0x7FA},   // Venice
	3:  {Min: 0x1734, Max: 0x1764}, // Bartoli's Hideout
	4:  {Min: 0x1E20, Max: 0x1E38}, // Opera House
	5:  {Min: 0xAC4, Max: 0xADC},   // Offshore Rig
	6:  {Min: 0x12DE, Max: 0x131A}, // Diving Area
	7:  {Min: 0x7FC, Max: 0x7FC},   // 40 Fathoms
	8:  {Min: 0x238E, Max: 0x242A}, // Wreck of the Maria Doria
	9:  {Min: 0x90A, Max: 0x90A},   // Living Quarters
	10: {Min: 0xBAC, Max: 0xBF4},   // The Deck
	11: {Min: 0x12E4, Max: 0x1314}, // Tibetan Foothills
	12: {Min: 0x2522, Max: 0x25FA}, // Barkhang Monastery
	13: {Min: 0x7F8, Max: 0x7F8},   // Catacombs of the Talion
	14: {Min: 0xE2A, Max: 0xE4E},   // Ice Palace
	15: {Min: 0x2A7A, Max: 0x2AC2}, // Temple of Xian
	16: {Min: 0x9CC, Max: 0x9D8},   // Floating Islands
	17: {Min: 0xF78, Max: 0xFC0},   // The Dragon's Lair
	18: {Min: 0xE86, Max: 0xF2E},   // Home Sweet Home
	19: {Min: 0x1626, Max: 0x1656}, // The Cold War
	20: {Min: 0x1D80, Max: 0x1DBC}, // Fool's Gold
	21: {Min: 0x1FD4, Max: 0x2064}, // Furnace of the Gods
	22: {Min: 0x91A, Max: 0x926},   // Kingdom
	23: {Min: 0xDDA, Max: 0xDF2},   // Nightmare in Vegas
}

// Signatures are the animation states that precede Lara's health record.
var Signatures = []health.Signature{
	{Bytes: [4]byte{0x02, 0x00, 0x02, 0x00}, State: "Standing"},
	{Bytes: [4]byte{0x13, 0x00, 0x13, 0x00}, State: "Climbing"},
	{Bytes: [4]byte{0x21, 0x00, 0x21, 0x00}, State: "On water"},
	{Bytes: [4]byte{0x0D, 0x00, 0x0D, 0x00}, State: "Underwater"},
	{Bytes: [4]byte{0x12, 0x00, 0x12, 0x00}, State: "Swimming"},
	{Bytes: [4]byte{0x17, 0x00, 0x02, 0x00}, State: "Rolling"},
	{Bytes: [4]byte{0x41, 0x00, 0x02, 0x00}, State: "Walking through water"},
	{Bytes: [4]byte{0x22, 0x00, 0x22, 0x00}, State: "Wading through water"},
	{Bytes: [4]byte{0x01, 0x00, 0x02, 0x00}, State: "Running forward"},
	{Bytes: [4]byte{0x03, 0x00, 0x03, 0x00}, State: "Jumping forward"},
	{Bytes: [4]byte{0x20, 0x00, 0x20, 0x00}, State: "Sliding backward"},
	{Bytes: [4]byte{0x18, 0x00, 0x18, 0x00}, State: "Sliding downhill"},
	{Bytes: [4]byte{0x2A, 0x00, 0x02, 0x00}, State: "Using puzzle item"},
	{Bytes: [4]byte{0x01, 0x00, 0x01, 0x00}, State: "Driving motorboat", Vehicle: true},
	{Bytes: [4]byte{0x05, 0x00, 0x05, 0x00}, State: "Driving motorboat", Vehicle: true},
	{Bytes: [4]byte{0x08, 0x00, 0x08, 0x00}, State: "Driving snowmobile", Vehicle: true},
	{Bytes: [4]byte{0x04, 0x00, 0x04, 0x00}, State: "Driving snowmobile", Vehicle: true},
}

// Scanner walks the 12-byte animation records; the signature sits ten bytes
// before the value.
var Scanner = &health.Scanner{
	Step:       0xC,
	Window:     10,
	Guard:      2,
	Signatures: Signatures,
}
