// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stemforge/stemnorm/audio"
	"github.com/stemforge/stemnorm/formats/wav"
)

// discoverStems loads every recognized audio file in folder, sorted by
// filename so the reference stem (and with it the mix duration) is
// deterministic across platforms. A folder with no recognized files
// returns an empty set and no error.
func discoverStems(reg *audio.Registry, folder string) ([]audio.Stem, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading stems folder: %w", err)
	}

	var stems []audio.Stem

	// os.ReadDir already sorts entries by filename.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !reg.Recognized(filepath.Ext(entry.Name())) {
			continue
		}

		stem, err := loadStem(reg, filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, err
		}

		stems = append(stems, stem)
	}

	return stems, nil
}

// loadStem decodes one audio file into a Stem. Decode failures are
// wrapped in a DecodeError naming the file.
func loadStem(reg *audio.Registry, path string) (audio.Stem, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Stem{}, fmt.Errorf("opening stem: %w", err)
	}
	defer f.Close()

	dec, err := decoderFor(reg, f, path)
	if err != nil {
		return audio.Stem{}, &DecodeError{Path: path, Err: err}
	}

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Stem{}, &DecodeError{Path: path, Err: err}
	}
	defer src.Close()

	stem, err := audio.ReadAll(src, filepath.Base(path))
	if err != nil {
		return audio.Stem{}, &DecodeError{Path: path, Err: err}
	}

	return stem, nil
}

var riffMagic = []byte("RIFF")
var waveMagic = []byte("WAVE")

// decoderFor picks a decoder for path. RIFF/WAVE content wins over the
// file extension: exported stems keep their original filenames but
// always contain PCM WAV data, so the verifier must not trust a .mp3
// suffix on a file this pipeline wrote.
func decoderFor(reg *audio.Registry, f *os.File, path string) (audio.Decoder, error) {
	var magic [12]byte
	if n, _ := f.ReadAt(magic[:], 0); n == len(magic) &&
		bytes.Equal(magic[0:4], riffMagic) && bytes.Equal(magic[8:12], waveMagic) {
		return wav.Decoder{}, nil
	}

	ext := strings.ToLower(filepath.Ext(path))

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("no decoder for %q files", ext)
	}

	return dec, nil
}
