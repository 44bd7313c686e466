package wavetable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrUnsupportedBitDepth indicates a PCM bit depth other than 16 or 24.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// getMaxValue returns the full-scale integer value for a bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	default:
		return 0, fmt.Errorf("%w: %d (want 16 or 24)", ErrUnsupportedBitDepth, bitDepth)
	}
}

// WriteWAV encodes mono samples as a PCM WAV stream. Samples are clamped
// to [-1, 1] before conversion.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return err
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		s = min(max(s, -1), 1)
		data[i] = int(s * maxVal)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// SaveWAV writes mono samples to a new WAV file at path.
func SaveWAV(path string, samples []float64, sampleRate, bitDepth int) error {
	if _, err := getMaxValue(bitDepth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteWAV(f, samples, sampleRate, bitDepth); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Clip holds decoded PCM audio. Samples are scaled to [-1, 1] and
// interleaved when there is more than one channel.
type Clip struct {
	Samples    []float64
	SampleRate int
	Channels   int
	BitDepth   int
}

// LoadWAV decodes a 16 or 24-bit PCM WAV file.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	invMaxVal := 1 / maxVal
	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) * invMaxVal
	}

	format := decoder.Format()
	return &Clip{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
	}, nil
}
