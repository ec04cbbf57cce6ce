package parsers

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

const (
	// headProbeSize is how many leading bytes are sniffed before committing
	// to a full read.
	headProbeSize = 4096

	// maxReadBytes caps how much of a single file is ever read.
	maxReadBytes = 20_000_000

	controlRatioLimit = 0.30
	highBitRatioLimit = 0.60
)

// javaSerialMagic marks serialized JVM object streams, which otherwise can
// sneak past the ratio checks.
var javaSerialMagic = []byte{0xac, 0xed}

// IsLikelyBinary reports whether data looks like binary content rather than
// text: NUL bytes, the Java serialization magic, a high ratio of control
// characters, a high ratio of high-bit bytes, or invalid UTF-8.
func IsLikelyBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	if bytes.HasPrefix(data, javaSerialMagic) {
		return true
	}

	control := 0
	highBit := 0
	for _, b := range data {
		if (b < 0x20 || b == 0x7f) && b != '\t' && b != '\n' && b != '\r' {
			control++
		}
		if b >= 0x80 {
			highBit++
		}
	}
	total := float64(len(data))
	if float64(control)/total > controlRatioLimit {
		return true
	}
	if float64(highBit)/total > highBitRatioLimit {
		return true
	}
	return !utf8.Valid(data)
}

// ReadTextSafely reads path as UTF-8 text. It returns ok=false for binary,
// unreadable, or non-UTF-8 files; such files are skipped, never errors.
// Reads are capped at 20 MB.
func ReadTextSafely(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	head := make([]byte, headProbeSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", false
	}
	head = head[:n]
	probe := head
	if n == headProbeSize {
		// A rune can straddle the probe boundary; drop the partial tail
		// so it does not read as invalid UTF-8.
		for i := 0; i < utf8.UTFMax-1 && len(probe) > 0; i++ {
			r, size := utf8.DecodeLastRune(probe)
			if r != utf8.RuneError || size != 1 {
				break
			}
			probe = probe[:len(probe)-1]
		}
	}
	if IsLikelyBinary(probe) {
		return "", false
	}

	rest, err := io.ReadAll(io.LimitReader(f, int64(maxReadBytes-len(head))))
	if err != nil {
		return "", false
	}
	data := append(head, rest...)
	if IsLikelyBinary(data) {
		return "", false
	}
	return string(data), true
}
