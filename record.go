package mbus

import (
	"fmt"
	"log/slog"
)

// decoderKind tags which value decoder a data record uses, a closed
// enumeration standing in for the source's per-call dispatch (§9 design
// note: a typed variant here avoids the virtual-call indirection of a
// Decoder base class for a fixed, small set of cases).
type decoderKind int

const (
	decNone decoderKind = iota
	decUintLE
	decBCD
	decNegBCD
	decASCII
	decTypeF
	decTypeG
	decRaw
	decUnimplemented
)

// decoderSpec pairs a decoderKind with the byte length it consumes (fixed
// for every kind except under an LVAR DIF, where both the kind and n come
// from the VIF's own LVAR length byte rather than the Data Field Table).
type decoderSpec struct {
	kind decoderKind
	n    int
}

// decode interprets raw against this spec, returning a value appropriate to
// the kind: uint64 for decUintLE, string for decBCD/decNegBCD/decASCII/
// decTypeF/decTypeG, []byte for decRaw.
func (s decoderSpec) decode(raw []byte) (any, error) {
	switch s.kind {
	case decNone:
		return nil, nil
	case decUintLE:
		v, err := decodeUint(raw, s.n)
		return uint64(v), err
	case decBCD:
		return decodeBCD(raw), nil
	case decNegBCD:
		return "-" + decodeBCD(raw), nil
	case decASCII:
		return decodeASCII(raw)
	case decTypeF:
		v, ok := decodeTypeF(raw)
		if !ok {
			slog.Default().Error("mbus: invalid Type F date-time", "raw", raw)
		}
		return v, nil
	case decTypeG:
		v, ok := decodeTypeG(raw)
		if !ok {
			slog.Default().Error("mbus: invalid Type G date", "raw", raw)
		}
		return v, nil
	case decRaw:
		return append([]byte(nil), raw...), nil
	case decUnimplemented:
		return nil, &UnimplementedError{Feature: "decoder"}
	default:
		return nil, fmt.Errorf("mbus: unknown decoder kind %d", s.kind)
	}
}

// DataRecord is one decoded VDS (Variable Data Structure) record (§4, §6).
// Description is the composite "<function>_<vif descr> <storage>:<tariff>"
// string (e.g. "Act_Energy 0:0"), matching the original's
// f'{function}_{descr} {storage_nr}:{tariff}'. Value/Unit hold the decoded
// value and its unit. The Extensive* fields are only populated when the
// call was made with CallOptions.ExtensiveMode set.
type DataRecord struct {
	Description string
	Value       any
	Unit        string

	Function Function
	Storage  uint64
	Tariff   uint64

	ExtensiveRawValue any
	ExtensiveScale    float64
	ExtensiveVif      byte
	ExtensiveDecoder  decoderKind
	ExtensiveRawBytes []byte
}

// parseRecords consumes the variable data block of a response (everything
// after the Fixed Data Header) into a slice of DataRecords, per §4.5. It
// stops at the first Manufacturer-specific block marker (0x0F/0x1F) or when
// the buffer is exhausted, and skips filler bytes (0x2F) between records
// exactly as the source does.
func parseRecords(data []byte, opts CallOptions) ([]DataRecord, error) {
	var records []DataRecord
	pos := 0
	for pos < len(data) {
		if data[pos] == 0x2F {
			pos++
			continue
		}
		if data[pos] == 0x0F || data[pos] == 0x1F {
			break
		}

		dif, err := parseDIF(data[pos:])
		if err != nil {
			return records, err
		}
		pos += dif.nbytes

		vifResult, vifBytes, err := parseVIF(data[pos:], dif.entry.lvar)
		if err != nil {
			return records, err
		}
		pos += vifBytes

		if dif.entry.decoder == decNone && !dif.entry.lvar {
			continue
		}

		spec := decoderSpec{kind: dif.entry.decoder, n: dif.entry.length}
		if dif.entry.lvar {
			spec.kind = vifResult.decoderOverride
			spec.n = vifResult.valueLen
		} else if vifResult.decoderOverride != decNone {
			spec.kind = vifResult.decoderOverride
			if spec.kind == decTypeF {
				spec.n = 4
			} else if spec.kind == decTypeG {
				spec.n = 2
			}
		}

		if pos+spec.n > len(data) {
			return records, &FrameError{Reason: "truncated record: value bytes"}
		}
		raw := data[pos : pos+spec.n]
		pos += spec.n

		value, err := spec.decode(raw)
		if err != nil {
			return records, err
		}

		rawValue := value
		scale := vifResult.scale
		if opts.scaleResults() && scale != 1 {
			if n, ok := value.(uint64); ok {
				value = float64(n) * scale
			}
		}

		rec := DataRecord{
			Description: fmt.Sprintf("%s_%s %d:%d", dif.function, vifResult.description, dif.storage, dif.tariff),
			Value:       value,
			Unit:        vifResult.unit,
			Function:    dif.function,
			Storage:     dif.storage,
			Tariff:      dif.tariff,
		}
		if opts.ExtensiveMode {
			rec.ExtensiveRawValue = rawValue
			rec.ExtensiveScale = scale
			rec.ExtensiveVif = vifResult.vif
			rec.ExtensiveDecoder = spec.kind
			rec.ExtensiveRawBytes = append([]byte(nil), raw...)
		}
		records = append(records, rec)
	}
	return records, nil
}
