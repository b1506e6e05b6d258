package protocol

import "errors"

var errPayloadTooLarge = errors.New("protocol: payload exceeds frame limit")

// Encode builds one wire frame for an event. Returns an error only when
// the payload cannot fit; the firmware side sends fixed small payloads,
// so in practice this never fails there.
func Encode(kind EventKind, payload []byte) ([]byte, error) {
	total := FrameHeaderSize + len(payload) + FrameTrailerSize
	if total > FrameLengthMax {
		return nil, errPayloadTooLarge
	}

	frame := make([]byte, 0, total)
	frame = append(frame, byte(total), byte(kind))
	frame = append(frame, payload...)

	crc := CRC16(frame)
	frame = append(frame, byte(crc>>8), byte(crc&0xFF), FrameSync)
	return frame, nil
}

// Decoder is a streaming frame reader. Feed it raw serial bytes in any
// chunking; it returns completed events and silently skips garbage by
// hunting for the next sync byte, the same way the reader would recover
// after attaching to a stream mid-frame.
type Decoder struct {
	buf    []byte
	synced bool
}

// NewDecoder returns a decoder that assumes it is starting mid-stream
// and must find a sync byte before trusting frame boundaries.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends raw bytes and returns any events completed by them.
func (d *Decoder) Feed(data []byte) []Event {
	d.buf = append(d.buf, data...)

	var events []Event
	for {
		if !d.synced {
			syncPos := -1
			for i, b := range d.buf {
				if b == FrameSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				d.buf = d.buf[:0]
				return events
			}
			d.buf = d.buf[syncPos+1:]
			d.synced = true
		}

		// Skip stray sync bytes between frames.
		for len(d.buf) > 0 && d.buf[0] == FrameSync {
			d.buf = d.buf[1:]
		}
		if len(d.buf) < FrameLengthMin {
			return events
		}

		frameLen := int(d.buf[0])
		if frameLen < FrameLengthMin || frameLen > FrameLengthMax {
			d.synced = false
			continue
		}
		if len(d.buf) < frameLen {
			return events
		}

		if d.buf[frameLen-1] != FrameSync {
			d.synced = false
			continue
		}
		wantCRC := uint16(d.buf[frameLen-3])<<8 | uint16(d.buf[frameLen-2])
		if CRC16(d.buf[:frameLen-FrameTrailerSize]) != wantCRC {
			d.synced = false
			continue
		}

		payload := make([]byte, frameLen-FrameHeaderSize-FrameTrailerSize)
		copy(payload, d.buf[FrameHeaderSize:frameLen-FrameTrailerSize])
		events = append(events, Event{
			Kind: EventKind(d.buf[1]),
			Data: payload,
		})
		d.buf = d.buf[frameLen:]
	}
}
