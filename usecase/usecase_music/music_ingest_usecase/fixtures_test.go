package music_ingest_usecase

import (
	"bytes"
	"encoding/binary"
	"time"
)

// mpeg1 layer3, 128kbps, 44.1kHz, 无 CRC
var mpegHeader = []byte{0xFF, 0xFB, 0x90, 0x64}

const (
	mpegFrameSize     = 417
	mpegFrameDuration = 1152 * time.Second / 44100
)

func mp3Frames(n int) []byte {
	frame := make([]byte, mpegFrameSize)
	copy(frame, mpegHeader)
	return bytes.Repeat(frame, n)
}

// mp3OfLength 生成至少 d 时长的帧序列
func mp3OfLength(d time.Duration) []byte {
	n := int(d/mpegFrameDuration) + 1
	return mp3Frames(n)
}

// wavOf 8kHz 单声道 8bit PCM；declaredSeconds 写入头部，实际只写 bodySeconds 的数据
func wavOf(declaredSeconds, bodySeconds int) []byte {
	const rate = 8000
	dataSize := uint32(declaredSeconds * rate)

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, 36+dataSize)
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(8))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, dataSize)
	b.Write(bytes.Repeat([]byte{0x80}, bodySeconds*rate))
	return b.Bytes()
}

// wavWithInfo 在 fmt 与 data 之间插入 LIST/INFO 块
func wavWithInfo(title, genre string, seconds int) []byte {
	const rate = 8000
	entry := func(id, text string) []byte {
		data := append([]byte(text), 0)
		if len(data)%2 == 1 {
			data = append(data, 0)
		}
		var e bytes.Buffer
		e.WriteString(id)
		_ = binary.Write(&e, binary.LittleEndian, uint32(len(data)))
		e.Write(data)
		return e.Bytes()
	}
	var info bytes.Buffer
	info.WriteString("INFO")
	info.Write(entry("INAM", title))
	info.Write(entry("IGNR", genre))

	dataSize := uint32(seconds * rate)
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(4+24+8+info.Len()+8)+dataSize)
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(rate))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(8))
	b.WriteString("LIST")
	_ = binary.Write(&b, binary.LittleEndian, uint32(info.Len()))
	b.Write(info.Bytes())
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, dataSize)
	b.Write(bytes.Repeat([]byte{0x80}, int(dataSize)))
	return b.Bytes()
}

// id3v23 仅包含 TIT2 与 TCON 两个文本帧
func id3v23(title, genre string) []byte {
	var frames bytes.Buffer
	writeFrame := func(id, text string) {
		frames.WriteString(id)
		_ = binary.Write(&frames, binary.BigEndian, uint32(len(text)+1))
		frames.Write([]byte{0, 0, 0})
		frames.WriteString(text)
	}
	writeFrame("TIT2", title)
	writeFrame("TCON", genre)

	size := frames.Len()
	var b bytes.Buffer
	b.WriteString("ID3")
	b.Write([]byte{3, 0, 0})
	b.Write([]byte{
		byte(size >> 21 & 0x7F),
		byte(size >> 14 & 0x7F),
		byte(size >> 7 & 0x7F),
		byte(size & 0x7F),
	})
	b.Write(frames.Bytes())
	return b.Bytes()
}

var (
	pngBytes  = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
)
