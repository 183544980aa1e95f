// Package sound is a play-by-name audio library for micro games.
//
// Sounds are decoded once into memory, resampled to the library's sample
// rate, and played by name through a single mixer. The mixer is itself a
// beep.Streamer: Init hands it to the speaker, while tests can pull samples
// from it directly.
package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rcbc-cs/micro"
)

// DefaultSampleRate is the mixing rate used by NewLibrary callers that have
// no preference.
const DefaultSampleRate beep.SampleRate = 44100

// ErrUnknownSound is returned by Play for a name that was never loaded.
var ErrUnknownSound = errors.New("sound: unknown sound")

// Extensions lists the file types Load picks up.
var Extensions = []string{".mp3", ".wav"}

// Library holds decoded sounds by name and mixes the ones playing.
type Library struct {
	format beep.Format

	mu     sync.Mutex
	sounds map[string]*beep.Buffer
	mixer  beep.Mixer
}

// NewLibrary returns an empty stereo library mixing at sr.
func NewLibrary(sr beep.SampleRate) *Library {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	return &Library{
		format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		sounds: make(map[string]*beep.Buffer),
	}
}

// Format returns the library's output format.
func (l *Library) Format() beep.Format { return l.format }

// Init starts the speaker at the library's rate with the given latency and
// feeds it the mixer.
func (l *Library) Init(latency time.Duration) error {
	sr := l.format.SampleRate
	if err := speaker.Init(sr, sr.N(latency)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(l)
	micro.Logger().Info("sound: speaker started", "rate", int(sr), "latency", latency)
	return nil
}

// Load decodes every .mp3 and .wav file directly inside dir. Each sound is
// named after its file without the extension. It returns the number loaded;
// a file that fails to decode aborts the load.
func (l *Library) Load(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("sound: read %s: %w", dir, err)
	}
	n := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !knownExtension(ext) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := l.loadFile(path, ext); err != nil {
			return n, err
		}
		n++
	}
	micro.Logger().Info("sound: loaded", "dir", dir, "count", n)
	return n, nil
}

func (l *Library) loadFile(path, ext string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("sound: open %s: %w", path, err)
	}
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("sound: decode %s: %w", path, err)
	}
	defer stream.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	l.Add(name, stream, format.SampleRate)
	return nil
}

// Decode reads a WAV stream from r and stores it as name.
func (l *Library) Decode(name string, r io.Reader) error {
	stream, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("sound: decode %s: %w", name, err)
	}
	defer stream.Close()
	l.Add(name, stream, format.SampleRate)
	return nil
}

// Add drains s, recorded at rate sr, into memory under name, replacing any
// previous sound with that name.
func (l *Library) Add(name string, s beep.Streamer, sr beep.SampleRate) {
	if sr != l.format.SampleRate && sr > 0 {
		s = beep.Resample(4, sr, l.format.SampleRate, s)
	}
	buf := beep.NewBuffer(l.format)
	buf.Append(s)

	l.mu.Lock()
	l.sounds[name] = buf
	l.mu.Unlock()
}

// Names returns the loaded sound names in sorted order.
func (l *Library) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, 0, len(l.sounds))
	for name := range l.sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the length of the named sound in samples, or 0.
func (l *Library) Len(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if buf, ok := l.sounds[name]; ok {
		return buf.Len()
	}
	return 0
}

// Play starts the named sound from the beginning. The same sound may play
// several times at once.
func (l *Library) Play(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, ok := l.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	l.mixer.Add(buf.Streamer(0, buf.Len()))
	return nil
}

// Playing returns the number of sounds currently in the mixer.
func (l *Library) Playing() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mixer.Len()
}

// Stop silences everything that is playing.
func (l *Library) Stop() {
	l.mu.Lock()
	l.mixer.Clear()
	l.mu.Unlock()
}

// Stream mixes the playing sounds into samples. It never runs out; when
// nothing plays it produces silence.
func (l *Library) Stream(samples [][2]float64) (n int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mixer.Stream(samples)
}

// Err always returns nil.
func (l *Library) Err() error { return nil }

func knownExtension(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
