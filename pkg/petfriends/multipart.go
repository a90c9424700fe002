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

package petfriends

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const photoField = "pet_photo"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartForm buffers a whole form, photo included, in memory.
type multipartForm struct {
	buffer bytes.Buffer
	writer *multipart.Writer
}

func newMultipartForm() *multipartForm {
	form := &multipartForm{}
	form.writer = multipart.NewWriter(&form.buffer)

	return form
}

func (f *multipartForm) addFields(values url.Values) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if err := f.writer.WriteField(key, values.Get(key)); err != nil {
			return fmt.Errorf("writing form field %s: %w", key, err)
		}
	}

	return nil
}

// addPhoto attaches a file, labelled with a content type sniffed from its contents.
func (f *multipartForm) addPhoto(field, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading photo: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filepath.Base(path))))
	header.Set("Content-Type", http.DetectContentType(data))

	part, err := f.writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating photo part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing photo part: %w", err)
	}

	return nil
}

func (f *multipartForm) finish() ([]byte, string, error) {
	if err := f.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart form: %w", err)
	}

	return f.buffer.Bytes(), f.writer.FormDataContentType(), nil
}
