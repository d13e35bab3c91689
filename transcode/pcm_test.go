package transcode

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestPCM16ToFloat64(t *testing.T) {
	// s16le frames: 0, 16384, -32768, 32767
	data := []byte{
		0x00, 0x00,
		0x00, 0x40,
		0x00, 0x80,
		0xFF, 0x7F,
	}

	samples, err := PCM16ToFloat64(data)
	if err != nil {
		t.Fatalf("PCM16ToFloat64: %v", err)
	}

	want := []float64{0.0, 0.5, -1.0, 32767.0 / 32768.0}
	if len(samples) != len(want) {
		t.Fatalf("length: got %d, want %d", len(samples), len(want))
	}
	for i := range want {
		if math.Abs(samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, samples[i], want[i])
		}
	}
}

func TestPCM16ToFloat64_OddLength(t *testing.T) {
	if _, err := PCM16ToFloat64([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Error("expected error for odd-length input")
	}
}

func TestPCM16ToFloat64_Empty(t *testing.T) {
	samples, err := PCM16ToFloat64(nil)
	if err != nil {
		t.Fatalf("PCM16ToFloat64: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("empty input produced %d samples", len(samples))
	}
}

// writeTestWAV encodes int samples as a PCM WAV file and returns its path
func writeTestWAV(t *testing.T, samples []int, sampleRate, channels int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating wav file: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           samples,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing wav samples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing wav encoder: %v", err)
	}
	return path
}

func TestDecodeWAVFile_Mono(t *testing.T) {
	path := writeTestWAV(t, []int{0, 16384, -16384, -32768}, 16000, 1)

	data, err := DecodeWAVFile(path)
	if err != nil {
		t.Fatalf("DecodeWAVFile: %v", err)
	}

	if data.SampleRate != 16000 {
		t.Errorf("SampleRate: got %d, want 16000", data.SampleRate)
	}
	if data.Channels != 1 {
		t.Errorf("Channels: got %d, want 1", data.Channels)
	}

	want := []float64{0.0, 0.5, -0.5, -1.0}
	if len(data.Samples) != len(want) {
		t.Fatalf("samples: got %d, want %d", len(data.Samples), len(want))
	}
	for i := range want {
		if math.Abs(data.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, data.Samples[i], want[i])
		}
	}
}

func TestDecodeWAVFile_StereoDownmix(t *testing.T) {
	// Interleaved L/R frames: (16384, 0) and (-16384, -16384)
	path := writeTestWAV(t, []int{16384, 0, -16384, -16384}, 16000, 2)

	data, err := DecodeWAVFile(path)
	if err != nil {
		t.Fatalf("DecodeWAVFile: %v", err)
	}

	if data.Channels != 2 {
		t.Errorf("Channels: got %d, want 2", data.Channels)
	}
	want := []float64{0.25, -0.5}
	if len(data.Samples) != len(want) {
		t.Fatalf("samples: got %d, want %d", len(data.Samples), len(want))
	}
	for i := range want {
		if math.Abs(data.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, data.Samples[i], want[i])
		}
	}
}

func TestDecodeWAVFile_NotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("definitely not riff"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := DecodeWAVFile(path); err == nil {
		t.Error("expected error for non-WAV input")
	}
}

func TestDecodeWAVFile_Missing(t *testing.T) {
	if _, err := DecodeWAVFile(filepath.Join(t.TempDir(), "absent.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}
