package layout

import "encoding/binary"

type Order uint8

const (
	OrderNative Order = iota
	OrderLittle
	OrderBig
	OrderNetwork
)

var orderNames = [...]string{
	OrderNative:  "native",
	OrderLittle:  "little",
	OrderBig:     "big",
	OrderNetwork: "network",
}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "unknown"
}

// Marker returns the canonical format character for the order.
func (o Order) Marker() byte {
	switch o {
	case OrderLittle:
		return '<'
	case OrderBig:
		return '>'
	case OrderNetwork:
		return '!'
	default:
		return '@'
	}
}

// OrderFromMarker maps a leading format character to an order. A zero
// marker (none given) is native.
func OrderFromMarker(c byte) Order {
	switch c {
	case '<':
		return OrderLittle
	case '>':
		return OrderBig
	case '!':
		return OrderNetwork
	default:
		return OrderNative
	}
}

// HostEndian is the byte order of the machine running the program.
var HostEndian = detectHostEndian()

func detectHostEndian() binary.ByteOrder {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Endian resolves the order to a concrete byte order.
func (o Order) Endian() binary.ByteOrder {
	switch o {
	case OrderLittle:
		return binary.LittleEndian
	case OrderBig, OrderNetwork:
		return binary.BigEndian
	default:
		return HostEndian
	}
}
