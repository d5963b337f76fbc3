package tr5

import "github.com/joshuapare/savekit/save/health"

// Signatures are the animation states seen seven bytes before health.
// Title B has no vehicles.
var Signatures = []health.Signature{
	{Bytes: [4]byte{0x02, 0x02, 0x00, 0x52}, State: "Standing"},
	{Bytes: [4]byte{0x02, 0x02, 0x00, 0x67}, State: "Standing"},
	{Bytes: [4]byte{0x02, 0x02, 0x47, 0x67}, State: "Standing"},
	{Bytes: [4]byte{0x50, 0x50, 0x00, 0x07}, State: "Crawling"},
	{Bytes: [4]byte{0x50, 0x50, 0x47, 0x07}, State: "Crawling"},
	{Bytes: [4]byte{0x47, 0x47, 0x00, 0xDE}, State: "Crouching"},
	{Bytes: [4]byte{0x01, 0x01, 0x00, 0x06}, State: "Running forward"},
	{Bytes: [4]byte{0x01, 0x01, 0x00, 0xF4}, State: "Sprinting"},
	{Bytes: [4]byte{0x03, 0x03, 0x00, 0x4D}, State: "Jumping forward"},
	{Bytes: [4]byte{0x17, 0x02, 0x00, 0x93}, State: "Rolling"},
	{Bytes: [4]byte{0x13, 0x13, 0x00, 0x61}, State: "Climbing"},
	{Bytes: [4]byte{0x2A, 0x00, 0x00, 0x83}, State: "Using puzzle item"},
	{Bytes: [4]byte{0x2B, 0x00, 0x00, 0x86}, State: "Using puzzle item"},
	{Bytes: [4]byte{0x21, 0x21, 0x00, 0x6E}, State: "On water"},
	{Bytes: [4]byte{0x21, 0x21, 0x00, 0x75}, State: "Wading through water"},
	{Bytes: [4]byte{0x0D, 0x0D, 0x00, 0x6C}, State: "Underwater"},
	{Bytes: [4]byte{0x0D, 0x12, 0x00, 0x6C}, State: "Underwater"},
	{Bytes: [4]byte{0x12, 0x12, 0x00, 0xC6}, State: "Swimming forward"},
	{Bytes: [4]byte{0x12, 0x0D, 0x00, 0xC8}, State: "Swimming forward"},
	{Bytes: [4]byte{0x18, 0x18, 0x00, 0x46}, State: "Sliding downhill"},
}

// Scanner probes every byte of the bracket.
var Scanner = &health.Scanner{
	Step:       1,
	Window:     7,
	Guard:      1,
	Signatures: Signatures,
}
