package mbus

// vifParseResult is the result of resolving one VIF/VIFE chain (§4.2-§4.4):
// a human-readable description, a unit string, a cumulative scale factor,
// and an optional decoder override. valueLen is only meaningful when the
// preceding DIF signaled LVAR (§4.1): it gives the byte length of the value
// that follows, read from the VIF's own LVAR length byte rather than the
// Data Field Table.
type vifParseResult struct {
	description     string
	unit            string
	scale           float64
	decoderOverride decoderKind
	valueLen        int
	vif             byte
}

// parseVIF reads the VIF byte at data[0] and any following VIFE extension
// bytes, returning the resolved result and the number of bytes consumed.
// varLength reports whether the preceding DIF was the LVAR row (§4.1): only
// then may the VIF be 0x7C/0xFC (plain-text/variable-length VIF).
//
// Three VIF values are special-cased ahead of table lookup (§6): 0x7E/0xFE
// (manufacturer-specific, unimplemented), 0x7F/0xFF (manufacturer-extended,
// unimplemented), and 0x7C/0xFC (the LVAR-qualified VIF: its own following
// byte gives the value's length and, by range, its decoder - ASCII,
// positive BCD, negative BCD, or raw binary - rather than any table entry).
// 0x7D/0xFD and 0x7B/0xFB indirect to the secondary table via the following
// byte instead of the primary one.
func parseVIF(data []byte, varLength bool) (vifParseResult, int, error) {
	if len(data) == 0 {
		return vifParseResult{}, 0, &FrameError{Reason: "truncated record: missing VIF"}
	}
	vif := data[0]
	pos := 1
	low7 := vif & 0x7F

	result := vifParseResult{scale: 1, vif: vif}
	prev := vif

	switch low7 {
	case 0x7E:
		return vifParseResult{}, pos, &UnimplementedError{Feature: "manufacturer-specific VIF"}
	case 0x7F:
		return vifParseResult{}, pos, &UnimplementedError{Feature: "manufacturer-extended VIF"}
	case 0x7C:
		if !varLength {
			return vifParseResult{}, pos, &ProtocolError{Reason: "ASCII VIF 0x7C/0xFC without a preceding LVAR DIF"}
		}
		if pos >= len(data) {
			return vifParseResult{}, pos, &FrameError{Reason: "truncated LVAR length byte"}
		}
		lvar := data[pos]
		pos++
		n, kind, err := decodeLVARSpec(lvar)
		if err != nil {
			return vifParseResult{}, pos, err
		}
		result.valueLen = n
		result.decoderOverride = kind
		return result, pos, nil
	case 0x7D, 0x7B:
		// Indirection to the secondary table via the following byte. No
		// further VIFEs are consumed after this, even if the secondary byte
		// itself carries its extension bit set (§4.4).
		if pos >= len(data) {
			return vifParseResult{}, pos, &FrameError{Reason: "truncated secondary VIF"}
		}
		sv := data[pos]
		pos++
		entry, err := secondaryVif.resolve(sv)
		if err != nil {
			return vifParseResult{}, pos, err
		}
		result.description = entry.descr(sv)
		result.unit = entry.unit(sv)
		result.scale = entry.scale(sv)
		if entry.decoder != nil {
			result.decoderOverride = entry.decoder(sv)
		}
		return result, pos, nil
	default:
		entry, err := primaryVif.resolve(vif)
		if err != nil {
			return vifParseResult{}, pos, err
		}
		result.description = entry.descr(vif)
		result.unit = entry.unit(vif)
		result.scale = entry.scale(vif)
		if entry.decoder != nil {
			result.decoderOverride = entry.decoder(vif)
		}
	}

	// A set extension bit on the byte just consumed means a VIFE follows;
	// each VIFE is resolved against the secondary table, multiplies the
	// cumulative scale, and may append descriptive text (§4.4).
	for prev&0x80 != 0 {
		if pos >= len(data) {
			return vifParseResult{}, pos, &FrameError{Reason: "truncated VIFE chain"}
		}
		vife := data[pos]
		pos++
		if entry, err := secondaryVif.resolve(vife); err == nil {
			if d := entry.descr(vife); d != "" {
				result.description += ", " + d
			}
			if s := entry.scale(vife); s != 0 {
				result.scale *= s
			}
			if u := entry.unit(vife); u != "" {
				result.unit = u
			}
			if entry.decoder != nil {
				result.decoderOverride = entry.decoder(vife)
			}
		}
		prev = vife
	}

	return result, pos, nil
}

// decodeLVARSpec interprets an LVAR length byte (§4.1) into the value
// length and decoder kind it selects: 0x00-0xBF is ASCII text of that many
// characters, 0xC0-0xCF positive BCD, 0xD0-0xDF negative BCD, 0xE0-0xEF raw
// binary (too wide for the uint decoder beyond 4 bytes, so returned
// undecoded); any other value is rejected with a ProtocolError.
func decodeLVARSpec(lvar byte) (n int, kind decoderKind, err error) {
	switch {
	case lvar <= 0xBF:
		return int(lvar), decASCII, nil
	case lvar >= 0xC0 && lvar <= 0xCF:
		return int(lvar - 0xC0), decBCD, nil
	case lvar >= 0xD0 && lvar <= 0xDF:
		return int(lvar - 0xD0), decNegBCD, nil
	case lvar >= 0xE0 && lvar <= 0xEF:
		n = int(lvar - 0xE0)
		if n <= 4 {
			return n, decUintLE, nil
		}
		return n, decRaw, nil
	default:
		return 0, decNone, &ProtocolError{Reason: "unsupported LVAR length byte 0x" + hexByte(lvar)}
	}
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}
