// Package mapping declares how compose service options map onto container
// engine run flags, and renders option values into flag value tokens.
package mapping

import "strconv"

// Kind is the rendering rule applied to the value at a mapping entry's path.
type Kind int

const (
	Value Kind = iota
	IntValue
	FloatValue
	Switch
	Array
	ArrayAutoRepair
	Map
	MapArray
	Ulimits
	DeviceBlockIOConfigRate
	DeviceBlockIOConfigWeight
	Networks
)

var kindNames = [...]string{
	Value:                     "Value",
	IntValue:                  "IntValue",
	FloatValue:                "FloatValue",
	Switch:                    "Switch",
	Array:                     "Array",
	ArrayAutoRepair:           "ArrayAutoRepair",
	Map:                       "Map",
	MapArray:                  "MapArray",
	Ulimits:                   "Ulimits",
	DeviceBlockIOConfigRate:   "DeviceBlockIOConfigRate",
	DeviceBlockIOConfigWeight: "DeviceBlockIOConfigWeight",
	Networks:                  "Networks",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// SkipFalsy reports whether an unset or falsy value suppresses the flag.
// Network kinds are rendered by the run assembler itself and always pass.
func (k Kind) SkipFalsy() bool {
	return k != Networks
}
