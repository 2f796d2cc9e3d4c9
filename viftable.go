package mbus

import "math"

// vifEntry is one row of a VIF lookup table (§4.2). key is the 8-character
// binary pattern exactly as the EN 13757-3 table is usually transcribed:
// the first character is always '0' (the VIF extension bit is masked off
// before lookup) and a run of trailing 'n' characters marks the low,
// wildcard ("don't-care") bits that the VIF value itself supplies as a
// selector.
type vifEntry struct {
	key     string
	descr   func(vif byte) string
	scale   func(vif byte) float64
	unit    func(vif byte) string
	decoder func(vif byte) decoderKind // decNone if this entry never overrides the DIF-selected decoder
}

// vifTable is a resolved lookup table: one map per wildcard width (0..4),
// each keyed by the fixed (non-wildcard) bits of the pattern. This stands in
// for the "sorted list of (mask, match, shift level, entry)" structure recommended
// by §9 as a language-neutral replacement for the source's text-keyed,
// 'n'-wildcarded dictionary.
type vifTable struct {
	maxShift int
	byShift  [5]map[byte]vifEntry
}

func buildVifTable(entries []vifEntry, maxShift int) *vifTable {
	t := &vifTable{maxShift: maxShift}
	for i := range t.byShift {
		t.byShift[i] = make(map[byte]vifEntry)
	}
	for _, e := range entries {
		width, pattern := parseVifKey(e.key)
		t.byShift[width][pattern] = e
	}
	return t
}

// parseVifKey decodes an 8-character pattern string into its wildcard width
// and the fixed-bit pattern (a 7-bit value, wildcard bits cleared).
func parseVifKey(key string) (width int, pattern byte) {
	bits := key[1:] // drop the forced-zero extension bit; 7 bits remain
	for i := len(bits) - 1; i >= 0 && bits[i] == 'n'; i-- {
		width++
	}
	fixed := bits[:len(bits)-width]
	for _, c := range fixed {
		pattern <<= 1
		if c == '1' {
			pattern |= 1
		}
	}
	pattern <<= byte(width)
	return width, pattern
}

// resolve implements the §4.2 lookup algorithm: try an exact match first
// (shift=0), then progressively wildcard more low bits, up to maxShift. The
// first shift level to match wins.
func (t *vifTable) resolve(vif byte) (vifEntry, error) {
	key7 := vif & 0x7F
	for shift := 0; shift <= t.maxShift; shift++ {
		masked := key7 &^ (byte(1)<<uint(shift) - 1)
		if e, ok := t.byShift[shift][masked]; ok {
			return e, nil
		}
	}
	return vifEntry{}, &UnknownVifError{Vif: vif}
}

var timeUnits = [4]string{"seconds", "minutes", "hours", "days"}
var shortTimeUnits = [4]string{"s", "min", "hr", "days"}
var batteryTimeUnits = [4]string{"hr", "days", "months", "years"}

func constStr(s string) func(byte) string   { return func(byte) string { return s } }
func constScale(f float64) func(byte) float64 { return func(byte) float64 { return f } }

// primaryVif is the primary VIF table (§6, "Primary VIF table"), resolved
// with max_shift=3.
var primaryVif = buildVifTable([]vifEntry{
	{key: "00000nnn", descr: constStr("Energy"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-3)) }, unit: constStr("Wh")},
	{key: "00001nnn", descr: constStr("Energy"), scale: func(x byte) float64 { return math.Pow(10, float64(x&0x07)) }, unit: constStr("J")},
	{key: "00010nnn", descr: constStr("Volume"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-6)) }, unit: constStr("m3")},
	{key: "00011nnn", descr: constStr("Mass"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-3)) }, unit: constStr("kg")},
	{key: "001000nn", descr: constStr("On_time"), scale: constScale(1), unit: func(x byte) string { return timeUnits[x&0x03] }},
	{key: "001001nn", descr: constStr("Operating_time"), scale: constScale(1), unit: func(x byte) string { return timeUnits[x&0x03] }},
	{key: "00101nnn", descr: constStr("Power"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-3)) }, unit: constStr("W")},
	{key: "00110nnn", descr: constStr("Power"), scale: func(x byte) float64 { return math.Pow(10, float64(x&0x07)) }, unit: constStr("J/h")},
	{key: "00111nnn", descr: constStr("Volume_flow"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-6)) }, unit: constStr("m3/h")},
	{key: "01000nnn", descr: constStr("Volume_flow"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-7)) }, unit: constStr("m3/min")},
	{key: "01001nnn", descr: constStr("Volume_flow"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-9)) }, unit: constStr("m3/s")},
	{key: "01010nnn", descr: constStr("Mass_flow"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x07)-3)) }, unit: constStr("kg/h")},
	{key: "010110nn", descr: constStr("Flow_temperature"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("C")},
	{key: "010111nn", descr: constStr("Return_temperature"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("C")},
	{key: "011000nn", descr: constStr("Temperature_diff"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("C")},
	{key: "011001nn", descr: constStr("External_temperature"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("C")},
	{key: "011010nn", descr: constStr("Pressure"), scale: func(x byte) float64 { return math.Pow(10, float64(int(x&0x03)-3)) }, unit: constStr("bar")},
	{key: "0110110n", descr: constStr("Time_point"), scale: constScale(1),
		unit:    func(x byte) string { return [2]string{"date", "datetime"}[x&0x01] },
		decoder: func(x byte) decoderKind { return [2]decoderKind{decTypeG, decTypeF}[x&0x01] }},
	{key: "01101110", descr: constStr("Units_for_HCA"), scale: constScale(1), unit: constStr("")},
	{key: "01101111", descr: constStr("Reserved"), scale: constScale(1), unit: constStr("")},
	{key: "011100nn", descr: constStr("Averaging_duration"), scale: constScale(1), unit: func(x byte) string { return timeUnits[x&0x03] }},
	{key: "011101nn", descr: constStr("Actuality_duration"), scale: constScale(1), unit: func(x byte) string { return timeUnits[x&0x03] }},
	{key: "01111000", descr: constStr("Fabrication_no"), scale: constScale(1), unit: constStr("")},
	{key: "01111001", descr: constStr("Enhanced"), scale: constScale(1), unit: constStr("")},
	{key: "01111010", descr: constStr("Bus_address"), scale: constScale(1), unit: constStr("")},
}, 3)
