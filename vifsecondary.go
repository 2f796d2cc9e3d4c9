package mbus

import "math"

// secondaryVif is the secondary (extended) VIF table (§6, "Secondary VIF
// table"), resolved with max_shift=4. It is consulted for VIFE bytes, and
// directly for a VIF when the primary lookup routes through the 0xFD/0xFB
// table-indirection codes (§4.4).
var secondaryVif = buildVifTable([]vifEntry{
	{key: "000000nn", descr: constStr("Credit in local currency"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("Eur")},
	{key: "000001nn", descr: constStr("Debit in local currency"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("Eur")},

	{key: "00001000", descr: constStr("Transmission count"), scale: constScale(1), unit: constStr("#")},
	{key: "00001001", descr: constStr("Medium"), scale: constScale(1), unit: constStr("")},
	{key: "00001010", descr: constStr("Manufacturer"), scale: constScale(1), unit: constStr("")},
	{key: "00001011", descr: constStr("Parameter set identification"), scale: constScale(1), unit: constStr("")},
	{key: "00001100", descr: constStr("Model version"), scale: constScale(1), unit: constStr("")},
	{key: "00001101", descr: constStr("Hardware version #"), scale: constScale(1), unit: constStr("")},
	{key: "00001110", descr: constStr("Firmware version #"), scale: constScale(1), unit: constStr("")},
	{key: "00001111", descr: constStr("Software version #"), scale: constScale(1), unit: constStr("")},

	{key: "00010000", descr: constStr("Customer location"), scale: constScale(1), unit: constStr("")},
	{key: "00010001", descr: constStr("Customer"), scale: constScale(1), unit: constStr("")},
	{key: "00010010", descr: constStr("Access code user"), scale: constScale(1), unit: constStr("")},
	{key: "00010011", descr: constStr("Access code operator"), scale: constScale(1), unit: constStr("")},
	{key: "00010100", descr: constStr("Access code system operator"), scale: constScale(1), unit: constStr("")},
	{key: "00010101", descr: constStr("Access code developer"), scale: constScale(1), unit: constStr("")},
	{key: "00010110", descr: constStr("Password"), scale: constScale(1), unit: constStr("")},
	{key: "00010111", descr: constStr("Error flags"), scale: constScale(1), unit: constStr("binary")},
	{key: "00011000", descr: constStr("Error mask"), scale: constScale(1), unit: constStr("binary")},
	{key: "00011001", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},

	{key: "00011010", descr: constStr("Digital output"), scale: constScale(1), unit: constStr("binary")},
	{key: "00011011", descr: constStr("Digital input"), scale: constScale(1), unit: constStr("binary")},
	{key: "00011100", descr: constStr("Baudrate"), scale: constScale(1), unit: constStr("Baud")},
	{key: "00011101", descr: constStr("Response delay time"), scale: constScale(1), unit: constStr("bittimes")},
	{key: "00011110", descr: constStr("Retry"), scale: constScale(1), unit: constStr("")},
	{key: "00011111", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},

	{key: "00100000", descr: constStr("First storage #"), scale: constScale(1), unit: constStr("")},
	{key: "00100001", descr: constStr("Last storage #"), scale: constScale(1), unit: constStr("")},
	{key: "00100010", descr: constStr("Size of storage block"), scale: constScale(1), unit: constStr("")},
	{key: "00100011", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
	{key: "001001nn", descr: constStr("Storage interval"), scale: constScale(1), unit: func(x byte) string { return shortTimeUnits[x&0x03] }},
	{key: "00101000", descr: constStr("Storage interval months"), scale: constScale(1), unit: constStr("months")},
	{key: "00101001", descr: constStr("Storage interval years"), scale: constScale(1), unit: constStr("years")},
	{key: "00101010", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
	{key: "00101011", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
	{key: "001011nn", descr: constStr("Duration since last readout"), scale: constScale(1), unit: func(x byte) string { return shortTimeUnits[x&0x03] }},

	{key: "00110000", descr: constStr("Startdate of tariff"), scale: constScale(1), unit: constStr("datetime")},
	{key: "001100nn", descr: constStr("Duration of tariff"), scale: constScale(1), unit: func(x byte) string { return shortTimeUnits[x&0x03] }},
	{key: "001101nn", descr: constStr("Tariff period"), scale: constScale(1), unit: func(x byte) string { return shortTimeUnits[x&0x03] }},
	{key: "00111000", descr: constStr("Tariff period months"), scale: constScale(1), unit: constStr("months")},
	{key: "00111001", descr: constStr("Tariff period years"), scale: constScale(1), unit: constStr("years")},
	{key: "00111010", descr: constStr("No dimension"), scale: constScale(1), unit: constStr("")},
	{key: "00111011", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
	{key: "001111nn", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},

	{key: "0100nnnn", descr: constStr(""), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x0F)-9)) }, unit: constStr("V")},
	{key: "0101nnnn", descr: constStr(""), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x0F)-12)) }, unit: constStr("A")},

	{key: "01100000", descr: constStr("Reset counter"), scale: constScale(1), unit: constStr("")},
	{key: "01100001", descr: constStr("Cumulation counter"), scale: constScale(1), unit: constStr("")},
	{key: "01100010", descr: constStr("Control signal"), scale: constScale(1), unit: constStr("")},
	{key: "01100011", descr: constStr("Day of week"), scale: constScale(1), unit: constStr("")},
	{key: "01100100", descr: constStr("Week number"), scale: constScale(1), unit: constStr("")},
	{key: "01100101", descr: constStr("Timepoint of daychange"), scale: constScale(1), unit: constStr("")},
	{key: "01100110", descr: constStr("State of parameter activation"), scale: constScale(1), unit: constStr("")},
	{key: "01100111", descr: constStr("Special supplier info"), scale: constScale(1), unit: constStr("")},

	{key: "011010nn", descr: constStr("Duration since last cumulation"), scale: constScale(1), unit: func(x byte) string { return batteryTimeUnits[x&0x03] }},
	{key: "011011nn", descr: constStr("Operating time battery"), scale: constScale(1), unit: func(x byte) string { return batteryTimeUnits[x&0x03] }},
	{key: "01110000", descr: constStr("Datetime battery change"), scale: constScale(1), unit: constStr("datetime")},
	{key: "0111000n", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
}, 4)
