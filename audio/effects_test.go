package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestToneWaves(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
		freq float64
	}{
		{"sine", WaveSine, 440},
		{"square", WaveSquare, 880},
		{"saw", WaveSaw, 110},
		{"noise", WaveNoise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Tone{Wave: tt.wave, Freq: tt.freq, Duration: 50 * time.Millisecond}.Streamer(testRate)

			samples := make([][2]float64, 100)
			n, ok := s.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
			}

			distinct := false
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d channels differ", i)
				}
				if samples[i][0] != samples[0][0] {
					distinct = true
				}
			}
			if !distinct {
				t.Error("Expected a varying waveform")
			}
		})
	}
}

func TestToneLength(t *testing.T) {
	tone := Tone{Wave: WaveSine, Freq: 440, Duration: 10 * time.Millisecond}
	want := testRate.N(tone.Duration)

	s := tone.Streamer(testRate)
	samples := make([][2]float64, want*2)
	n, ok := s.Stream(samples)
	if n != want || !ok {
		t.Errorf("Expected %d samples ok, got n=%d ok=%v", want, n, ok)
	}

	n, ok = s.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained stream, got n=%d ok=%v", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got %v", s.Err())
	}
}

func TestToneEnvelope(t *testing.T) {
	// Square wave keeps raw amplitude at 1, so magnitude is the envelope
	tone := Tone{
		Wave:     WaveSquare,
		Freq:     100,
		Duration: 100 * time.Millisecond,
		Attack:   20 * time.Millisecond,
		Release:  20 * time.Millisecond,
	}
	out := drain(tone.Streamer(testRate))
	attack := testRate.N(tone.Attack)

	if math.Abs(out[0]) != 0 {
		t.Errorf("Expected silent first sample, got %f", out[0])
	}
	if math.Abs(out[attack/2]) >= math.Abs(out[attack-1]) {
		t.Errorf("Expected attack to ramp up, mid=%f end=%f", out[attack/2], out[attack-1])
	}
	if mid := math.Abs(out[len(out)/2]); mid != 1 {
		t.Errorf("Expected full sustain, got %f", mid)
	}
	if last := math.Abs(out[len(out)-1]); last > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
}

func TestToneEnvelopeLongerThanDuration(t *testing.T) {
	tone := Tone{Wave: WaveSquare, Freq: 100, Duration: 10 * time.Millisecond, Attack: time.Second, Release: time.Second}
	out := drain(tone.Streamer(testRate))

	if len(out) != testRate.N(tone.Duration) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(tone.Duration), len(out))
	}
	for i, v := range out {
		if math.IsNaN(v) || math.Abs(v) > 1 {
			t.Fatalf("Sample %d invalid: %f", i, v)
		}
	}
}

func TestCueStreamerLengths(t *testing.T) {
	tests := []struct {
		name string
		cue  Cue
		want int
	}{
		{"infection", CueInfection, testRate.N(60 * time.Millisecond)},
		{"resteer", CueResteer, testRate.N(120 * time.Millisecond)},
		{"player", CuePlayerInfected, 2 * testRate.N(150*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(drain(cueStreamer(tt.cue, testRate, 1))); got != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, got)
			}
		})
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	tone := Tone{Wave: WaveSquare, Freq: 100, Duration: 50 * time.Millisecond}
	out := drain(newVolume(tone.Streamer(testRate), 0))

	if len(out) == 0 {
		t.Fatal("Expected zero-volume stream to still produce samples")
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("Expected silence, sample %d = %f", i, v)
		}
	}
}
