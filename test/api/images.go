/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
)

const (
	// jpegComment is the COM marker, its payload is ignored by decoders.
	jpegComment = 0xfe

	// maxSegmentPayload leaves room for the two length bytes.
	maxSegmentPayload = 0xffff - 2
)

// OversizedPhotoSize is larger than any upload a shelter should need.
const OversizedPhotoSize = 15 * 1024 * 1024

// WriteJPEG writes a valid JPEG image to dir/name.  When size is larger than
// the encoded image, comment segments pad it to exactly size bytes.
func WriteJPEG(dir, name string, size int) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))

	for x := range 32 {
		for y := range 32 {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}

	var encoded bytes.Buffer

	if err := jpeg.Encode(&encoded, img, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encoding jpeg: %w", err)
	}

	data := pad(encoded.Bytes(), size)

	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// pad inserts comment segments after the SOI marker.  A remainder too small
// to hold a segment header is appended after EOI.
func pad(data []byte, size int) []byte {
	need := size - len(data)
	if need <= 0 {
		return data
	}

	var out bytes.Buffer

	out.Grow(size)
	out.Write(data[:2])

	for need >= 4 {
		payload := min(need-4, maxSegmentPayload)

		out.Write([]byte{0xff, jpegComment})
		_ = binary.Write(&out, binary.BigEndian, uint16(payload+2)) //nolint:gosec // bounded by maxSegmentPayload
		out.Write(make([]byte, payload))

		need -= payload + 4
	}

	out.Write(data[2:])
	out.Write(make([]byte, need))

	return out.Bytes()
}
