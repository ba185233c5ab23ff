package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

const headerSize = 44

// Encode serializes a stereo buffer as uncompressed 16-bit PCM WAV,
// peak-normalized so the loudest sample maps to full scale. Absolute loudness
// is not preserved: proportionally scaled inputs encode to identical bytes,
// and repeat calls on the same buffer are byte-identical.
func Encode(buf *Buffer, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if buf == nil || buf.Frames() == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidParameter)
	}
	if len(buf.Left) != len(buf.Right) {
		return nil, fmt.Errorf("%w: channel length mismatch (%d vs %d)",
			ErrInvalidParameter, len(buf.Left), len(buf.Right))
	}
	peak := buf.Peak()
	if peak == 0 {
		return nil, fmt.Errorf("%w: cannot normalize an all-zero buffer", ErrSilentSignal)
	}

	frames := buf.Frames()
	blockAlign := Channels * BitDepth / 8
	dataLen := frames * blockAlign
	out := make([]byte, headerSize+dataLen)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(headerSize-8+dataLen))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], Channels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], BitDepth)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataLen))

	pos := headerSize
	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint16(out[pos:], uint16(quantize(buf.Left[i], peak)))
		binary.LittleEndian.PutUint16(out[pos+2:], uint16(quantize(buf.Right[i], peak)))
		pos += 4
	}
	return out, nil
}

func quantize(sample, peak float64) int16 {
	v := math.Round(sample / peak * 32767)
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}
