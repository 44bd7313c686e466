package wavetable

// Spectrum layout
const (
	halfDivisor = 2 // conjugate pair split and Nyquist bin
)

// Table reading
const (
	// localNewtonPoints is the window of the local Newton read: one sample
	// before the read position and two after it, a cubic through 4 points.
	localNewtonPoints = 4

	// splinePadding is the number of wrapped samples added on each side of
	// the table before the spline fit, so the natural end conditions do not
	// distort the periodic waveform.
	splinePadding = 8
)

// WAV output
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	pcmFormat       = 1 // WAVE_FORMAT_PCM
	monoChannels    = 1

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
)
