package fp32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// finish runs an unnormalized result through normalize and round, then
// packs it. Range forcing is the sequencer's job and is not applied.
func finish(res Extended) Word {
	Normalize(&res)
	Round(&res)
	return res.Word()
}

func TestAddSub(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b Word
		out  Word
	}){
		{"3.5+2.25", 0x40600000, 0x40100000, 0x40b80000},
		{"10.0-3.0", 0x41200000, 0xc0400000, 0x40e00000},
		{"1.0+1.0", 0x3f800000, 0x3f800000, 0x40000000},
		{"tie_even", 0x3f800000, 0x33800000, 0x3f800000},
		{"tie_odd", 0x3f800001, 0x33800000, 0x3f800002},
		{"cancel", 0x3fc00000, 0xbfc00000, 0x00000000},
		{"2.25-3.5", 0x40100000, 0xc0600000, 0xbfa00000},
	}

	for _, entry := range table {
		res := AddSub(Unpack(entry.a), Unpack(entry.b))
		assert.Equal(entry.out, finish(res), entry.name)
	}
}

func TestCommutativity(t *testing.T) {
	assert := assert.New(t)

	pairs := [][2]Word{
		{0x40600000, 0x40100000},
		{0x3f800001, 0x33800000},
		{0x42f6e979, 0xc2ba9fbe},
		{0x00800000, 0x7f7fffff},
		{0x3dcccccd, 0x40490fdb},
	}

	for _, pair := range pairs {
		a := Unpack(pair[0])
		b := Unpack(pair[1])
		assert.Equal(finish(AddSub(a, b)), finish(AddSub(b, a)), "add %v %v", pair[0], pair[1])
		assert.Equal(finish(Multiply(a, b)), finish(Multiply(b, a)), "mul %v %v", pair[0], pair[1])
	}
}

func TestMultiply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b Word
		out  Word
	}){
		{"2.5*4.0", 0x40200000, 0x40800000, 0x41200000},
		{"1.5*1.5", 0x3fc00000, 0x3fc00000, 0x40100000},
		{"sticky_round", 0x3f800001, 0x3f800001, 0x3f800002},
		{"sign", 0x40200000, 0xc0800000, 0xc1200000},
	}

	for _, entry := range table {
		res := Multiply(Unpack(entry.a), Unpack(entry.b))
		assert.Equal(entry.out, finish(res), entry.name)
	}
}

func TestDivider(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b Word
		out  Word
	}){
		{"10.0/2.0", 0x41200000, 0x40000000, 0x40a00000},
		{"1.0/3.0", 0x3f800000, 0x40400000, 0x3eaaaaab},
		{"pi/pi", 0x40490fdb, 0x40490fdb, 0x3f800000},
		{"-1.0/2.0", 0xbf800000, 0x40000000, 0xbf000000},
	}

	for _, entry := range table {
		var div Divider
		div.Init(Unpack(entry.a), Unpack(entry.b))
		for !div.Step() {
		}
		assert.Equal(entry.out, finish(div.Result()), entry.name)
	}
}

func TestDividerStepCount(t *testing.T) {
	assert := assert.New(t)

	var div Divider
	div.Init(Unpack(0x3f800000), Unpack(0x40400000))

	// One quotient bit per step, for exactly the fixed step count.
	for n := 1; n < DIVIDE_STEPS; n++ {
		assert.False(div.Step(), n)
	}
	assert.True(div.Step())
}

func TestNormalizeRange(t *testing.T) {
	assert := assert.New(t)

	// Subtractive cancellation below the normal range.
	res := AddSub(Unpack(0x00c00000), Unpack(0x80800000))
	Normalize(&res)
	assert.False(res.Overflow())
	assert.True(res.Underflow())

	// Sum past the finite range.
	res = AddSub(Unpack(0x7f7fffff), Unpack(0x7f7fffff))
	Normalize(&res)
	assert.True(res.Overflow())
	assert.False(res.Underflow())

	// Exact zero is not an underflow.
	res = AddSub(Unpack(0x3fc00000), Unpack(0xbfc00000))
	Normalize(&res)
	assert.False(res.Underflow())
	assert.Equal(int32(0), res.Exp)
}

func TestShiftSticky(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0x10), shiftSticky(0x100, 4))
	assert.Equal(uint64(0x11), shiftSticky(0x101, 4))
	assert.Equal(uint64(1), shiftSticky(0x101, 64))
	assert.Equal(uint64(1), shiftSticky(0x101, 200))
	assert.Equal(uint64(0), shiftSticky(0, 70))
	assert.Equal(uint64(0x101), shiftSticky(0x101, 0))
}
