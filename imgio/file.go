package imgio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d2718/jset"
)

// SaveFile writes data to path through a temporary file in the same
// directory followed by a rename, so an interrupted write never leaves a
// truncated file visible under the final name.
func SaveFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jset-tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// SavePNG renders pb to a PNG file, embedding params when non-empty.
func SavePNG(path string, pb *jset.PixelBuffer, params []byte) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, pb, params); err != nil {
		return err
	}
	return SaveFile(path, buf.Bytes())
}

// SavePPM writes pb to a raw PPM file.
func SavePPM(path string, pb *jset.PixelBuffer) error {
	var buf bytes.Buffer
	if err := WritePPM(&buf, pb); err != nil {
		return err
	}
	return SaveFile(path, buf.Bytes())
}
