package pipeline

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedPayload caps decompression so a forged frame cannot exhaust memory.
const maxDecodedPayload = 64 << 20

var (
	encOnce sync.Once
	encoder *zstd.Encoder
	decOnce sync.Once
	decoder *zstd.Decoder
)

func zstdEncoder() *zstd.Encoder {
	encOnce.Do(func() {
		// Errors only arise from invalid options.
		encoder, _ = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBestCompression),
			zstd.WithEncoderConcurrency(1),
			zstd.WithZeroFrames(true),
		)
	})
	return encoder
}

func zstdDecoder() *zstd.Decoder {
	decOnce.Do(func() {
		decoder, _ = zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxDecodedPayload),
		)
	})
	return decoder
}

func compress(b []byte) []byte {
	return zstdEncoder().EncodeAll(b, nil)
}

func decompress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil
	}
	return zstdDecoder().DecodeAll(b, nil)
}

// compressBound is a worst-case zstd frame size for n input bytes.
func compressBound(n int) int {
	return n + n>>8 + 64
}
