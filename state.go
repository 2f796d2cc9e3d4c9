package mbus

// ConnectionState describes the lifecycle of the TCP connection owned by a
// Master. A transport operation (send/recv) is only valid when the state is
// Connected.
type ConnectionState int

const (
	// Disconnected is the initial state; no socket exists.
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Disconnecting
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Disconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// BusState describes where a single request/response cycle is within its
// lifecycle. At most one cycle is in flight at a time (§5: the Master is not
// safe for concurrent use).
type BusState int

const (
	Idle BusState = iota
	Sending
	Receiving
	Retrying
)

func (s BusState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Receiving:
		return "receiving"
	case Retrying:
		return "retrying"
	default:
		return "unknown"
	}
}

// Medium enumerates the device-type byte carried in the Fixed Data Header.
type Medium byte

const (
	MediumOther                Medium = 0x00
	MediumOil                  Medium = 0x01
	MediumElectricity          Medium = 0x02
	MediumGas                  Medium = 0x03
	MediumHeat                 Medium = 0x04
	MediumSteam                Medium = 0x05
	MediumHotWater             Medium = 0x06
	MediumWater                Medium = 0x07
	MediumHeatCostAlloc        Medium = 0x08
	MediumCompressedAir        Medium = 0x09
	MediumCoolingOutlet        Medium = 0x0A
	MediumCoolingInlet         Medium = 0x0B
	MediumHeatInlet            Medium = 0x0C
	MediumHeatCoolingLoadMeter Medium = 0x0D
	MediumBus                  Medium = 0x0E
	MediumUnknown              Medium = 0x0F
	MediumColdWater            Medium = 0x16
	MediumDualWater            Medium = 0x17
	MediumPressure             Medium = 0x18
	MediumADConverter          Medium = 0x19
)

var mediumNames = map[Medium]string{
	MediumOther:                "Other",
	MediumOil:                  "Oil",
	MediumElectricity:          "Electricity",
	MediumGas:                  "Gas",
	MediumHeat:                 "Heat",
	MediumSteam:                "Steam",
	MediumHotWater:             "Hot_water",
	MediumWater:                "Water",
	MediumHeatCostAlloc:        "Heat_cost_alloc",
	MediumCompressedAir:        "Compressed_air",
	MediumCoolingOutlet:        "Cooling_outlet",
	MediumCoolingInlet:         "Cooling_inlet",
	MediumHeatInlet:            "Heat_inlet",
	MediumHeatCoolingLoadMeter: "Heat_cooling_load_meter",
	MediumBus:                  "Bus",
	MediumUnknown:              "Unknown_medium",
	MediumColdWater:            "Cold_water",
	MediumDualWater:            "Dual_water",
	MediumPressure:             "Pressure",
	MediumADConverter:          "AD_converter",
}

// String renders the medium's symbolic name, or "reserved or unknown" for
// values not in the EN 13757-3 table.
func (m Medium) String() string {
	if name, ok := mediumNames[m]; ok {
		return name
	}
	return "reserved or unknown"
}

// Function describes the DIF function-field bits (4-5) of a data record.
type Function byte

const (
	FunctionAct Function = 0b00
	FunctionMax Function = 0b01
	FunctionMin Function = 0b10
	FunctionErr Function = 0b11
)

func (f Function) String() string {
	switch f {
	case FunctionAct:
		return "Act"
	case FunctionMax:
		return "Max"
	case FunctionMin:
		return "Min"
	case FunctionErr:
		return "Err"
	default:
		return "Unknown"
	}
}

// Status describes the low two bits of the Fixed Data Header status byte.
type Status byte

const (
	StatusNoError             Status = 0
	StatusApplicationBusy     Status = 1
	StatusAnyApplicationError Status = 2
	StatusReserved            Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusNoError:
		return "NoError"
	case StatusApplicationBusy:
		return "ApplicationBusy"
	case StatusAnyApplicationError:
		return "AnyApplicationError"
	case StatusReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}
