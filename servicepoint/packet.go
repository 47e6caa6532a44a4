// Package servicepoint speaks the packet protocol of the CCCB "Servicepoint"
// display. Every packet starts with a ten byte header of five big-endian
// 16 bit words, a command code followed by four command specific values,
// and carries an optional payload.
package servicepoint

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the length of a packet header in bytes.
const HeaderSize = 10

// Code identifies a command.
type Code uint16

const (
	CodeClear               Code = 0x0002
	CodeCp437Data           Code = 0x0003
	CodeBrightness          Code = 0x0007
	CodeHardReset           Code = 0x000b
	CodeFadeOut             Code = 0x000d
	CodeBitmapLinear        Code = 0x0012
	CodeBitmapLinearWin     Code = 0x0013
	CodeBitmapLinearAnd     Code = 0x0014
	CodeBitmapLinearOr      Code = 0x0015
	CodeBitmapLinearXor     Code = 0x0016
	CodeBitmapLinearWinZlib Code = 0x0017
	CodeBitmapLinearWinZstd Code = 0x001a
	CodeUtf8Data            Code = 0x0020
)

func (c Code) String() string {
	switch c {
	case CodeClear:
		return "Clear"
	case CodeCp437Data:
		return "Cp437Data"
	case CodeBrightness:
		return "Brightness"
	case CodeHardReset:
		return "HardReset"
	case CodeFadeOut:
		return "FadeOut"
	case CodeBitmapLinear:
		return "BitmapLinear"
	case CodeBitmapLinearWin, CodeBitmapLinearWinZlib, CodeBitmapLinearWinZstd:
		return "BitmapLinearWin"
	case CodeBitmapLinearAnd:
		return "BitmapLinearAnd"
	case CodeBitmapLinearOr:
		return "BitmapLinearOr"
	case CodeBitmapLinearXor:
		return "BitmapLinearXor"
	case CodeUtf8Data:
		return "Utf8Data"
	}
	return fmt.Sprintf("Code(0x%04x)", uint16(c))
}

// Header is the fixed part of a packet.
type Header struct {
	Code       Code
	A, B, C, D uint16
}

// Packet is one datagram sent to the display.
type Packet struct {
	Header
	Payload []byte
}

// ErrShortPacket is returned when parsing fewer bytes than a header.
var ErrShortPacket = errors.New("servicepoint: packet shorter than header")

// MarshalBinary encodes the packet for the wire.
func (p Packet) MarshalBinary() ([]byte, error) {
	out := make([]byte, HeaderSize+len(p.Payload))
	binary.BigEndian.PutUint16(out[0:], uint16(p.Code))
	binary.BigEndian.PutUint16(out[2:], p.A)
	binary.BigEndian.PutUint16(out[4:], p.B)
	binary.BigEndian.PutUint16(out[6:], p.C)
	binary.BigEndian.PutUint16(out[8:], p.D)
	copy(out[HeaderSize:], p.Payload)
	return out, nil
}

// UnmarshalBinary decodes a packet received from the wire.
func (p *Packet) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return ErrShortPacket
	}
	p.Code = Code(binary.BigEndian.Uint16(data[0:]))
	p.A = binary.BigEndian.Uint16(data[2:])
	p.B = binary.BigEndian.Uint16(data[4:])
	p.C = binary.BigEndian.Uint16(data[6:])
	p.D = binary.BigEndian.Uint16(data[8:])
	p.Payload = append([]byte(nil), data[HeaderSize:]...)
	return nil
}

func (p Packet) String() string {
	return fmt.Sprintf("%v{%d %d %d %d} %d bytes", p.Code, p.A, p.B, p.C, p.D, len(p.Payload))
}
