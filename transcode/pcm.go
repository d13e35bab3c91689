package transcode

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/intona-audio/intona/logging"
)

// AudioData represents decoded mono audio
type AudioData struct {
	Samples    []float64 `json:"-"` // Normalized samples in [-1, 1]
	SampleRate int       `json:"sample_rate"`
	Channels   int       `json:"channels"` // Channel count of the source before downmix
}

// PCM16ToFloat64 converts 16-bit little-endian PCM bytes to normalized
// floating-point samples in [-1, 1] (sample/32768, no dithering). This is
// the entry contract consumed from the external transcoding collaborator,
// which delivers mono s16le at a fixed, known sample rate.
func PCM16ToFloat64(data []byte) ([]float64, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("pcm data has odd length %d, expected whole 16-bit frames", len(data))
	}

	samples := make([]float64, len(data)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(data[2*i:]))
		samples[i] = float64(s) / 32768.0
	}
	return samples, nil
}

// DecodeWAVFile decodes a PCM WAV file into normalized mono samples.
// Multi-channel input is downmixed by averaging. Used by the CLI entry
// adapter; a hosting service that already supplies raw PCM goes through
// PCM16ToFloat64 instead.
func DecodeWAVFile(path string) (*AudioData, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "wav_decoder",
		"path":      path,
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	data, err := downmix(buf, int(decoder.BitDepth))
	if err != nil {
		return nil, err
	}
	data.SampleRate = int(decoder.SampleRate)

	logger.Debug("decoded wav file", logging.Fields{
		"sample_rate": data.SampleRate,
		"channels":    data.Channels,
		"samples":     len(data.Samples),
		"bit_depth":   decoder.BitDepth,
	})

	return data, nil
}

// downmix converts an interleaved integer buffer to normalized mono float64
func downmix(buf *audio.IntBuffer, bitDepth int) (*AudioData, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("wav decoder returned empty buffer")
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	scale := float64(int64(1) << (bitDepth - 1))
	frames := len(buf.Data) / channels

	samples := make([]float64, frames)
	for i := range samples {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c]) / scale
		}
		samples[i] = sum / float64(channels)
	}

	return &AudioData{
		Samples:  samples,
		Channels: channels,
	}, nil
}
