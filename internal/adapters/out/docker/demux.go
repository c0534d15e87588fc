package docker

import (
	"encoding/binary"
	"strings"

	"github.com/docker/docker/pkg/stdcopy"
)

// frameHeaderLen is [stream:1][padding:3][size:4 big-endian].
const frameHeaderLen = 8

func isStream(b byte) bool {
	switch stdcopy.StdType(b) {
	case stdcopy.Stdin, stdcopy.Stdout, stdcopy.Stderr:
		return true
	}
	return false
}

// DemuxLogs decodes the engine's multiplexed log stream into plain text.
// Buffers that do not start with a frame header (containers started with a
// TTY) are returned unchanged. A frame whose payload is cut short is dropped.
func DemuxLogs(buf []byte) string {
	if len(buf) < frameHeaderLen || !isStream(buf[0]) {
		return string(buf)
	}

	var out strings.Builder
	out.Grow(len(buf))

	rest := buf
	for len(rest) >= frameHeaderLen {
		word := binary.BigEndian.Uint32(rest[0:4])
		if !isStream(byte(word >> 24)) {
			out.Write(rest)
			return out.String()
		}

		size := uint64(binary.BigEndian.Uint32(rest[4:frameHeaderLen]))
		if uint64(len(rest)-frameHeaderLen) < size {
			return out.String()
		}

		end := frameHeaderLen + int(size)
		out.Write(rest[frameHeaderLen:end])
		rest = rest[end:]
	}

	out.Write(rest)
	return out.String()
}
