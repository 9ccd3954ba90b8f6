package snapshot

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrInvalidMagic indicates the file is not a snapshot.
	ErrInvalidMagic = errors.New("snapshot: invalid magic")
	// ErrInvalidVersion indicates an unsupported format version.
	ErrInvalidVersion = errors.New("snapshot: unsupported format version")
	// ErrUnknownCompression indicates the header names an unregistered codec.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrChecksumMismatch indicates the body digest does not match the footer.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
	// ErrTruncated indicates the file is too short to hold header and footer.
	ErrTruncated = errors.New("snapshot: truncated file")
	// ErrInvalidLength indicates the footer's raw length cannot belong to the
	// body it claims to describe.
	ErrInvalidLength = errors.New("snapshot: invalid raw length")
)

var (
	headerMagic = [4]byte{'L', 'S', 'N', '1'}
	footerMagic = [4]byte{'L', 'S', 'F', '1'}
)

const (
	formatVersion = uint16(1)

	// header: magic(4) version(2) compression-name-len(2) reserved(8)
	headerSize = 16
	// footer: raw-len(8) xxh64(8) magic(4)
	footerSize = 20
)

func encodeHeader(compression string) []byte {
	buf := make([]byte, headerSize+len(compression))
	copy(buf[0:4], headerMagic[:])
	binary.LittleEndian.PutUint16(buf[4:6], formatVersion)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(len(compression)))
	copy(buf[headerSize:], compression)
	return buf
}

// decodeHeader parses the fixed header and returns the compression name and
// the offset where the body begins.
func decodeHeader(data []byte) (compression string, bodyOffset int, err error) {
	if len(data) < headerSize {
		return "", 0, ErrTruncated
	}
	if [4]byte(data[0:4]) != headerMagic {
		return "", 0, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint16(data[4:6]); v != formatVersion {
		return "", 0, ErrInvalidVersion
	}

	nameLen := int(binary.LittleEndian.Uint16(data[6:8]))
	bodyOffset = headerSize + nameLen
	if len(data) < bodyOffset {
		return "", 0, ErrTruncated
	}
	return string(data[headerSize:bodyOffset]), bodyOffset, nil
}

func encodeFooter(rawLen uint64, digest uint64) []byte {
	buf := make([]byte, footerSize)
	binary.LittleEndian.PutUint64(buf[0:8], rawLen)
	binary.LittleEndian.PutUint64(buf[8:16], digest)
	copy(buf[16:20], footerMagic[:])
	return buf
}

func decodeFooter(data []byte) (rawLen uint64, digest uint64, err error) {
	if len(data) < footerSize {
		return 0, 0, ErrTruncated
	}
	foot := data[len(data)-footerSize:]
	if [4]byte(foot[16:20]) != footerMagic {
		return 0, 0, ErrInvalidMagic
	}
	return binary.LittleEndian.Uint64(foot[0:8]), binary.LittleEndian.Uint64(foot[8:16]), nil
}
