package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// File is a named blob destined for the archive.
type File struct {
	Name string
	Data []byte
}

// WriteArchive packs files, in order, into a deflated zip. Colliding names
// get a "_2", "_3", ... suffix before the extension.
func WriteArchive(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	used := make(map[string]struct{}, len(files))
	for _, f := range files {
		name := uniqueName(used, f.Name)
		used[name] = struct{}{}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func uniqueName(used map[string]struct{}, name string) string {
	if _, ok := used[name]; !ok {
		return name
	}
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

// archiveNames lists the entry names of a zip archive in order.
func archiveNames(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names, nil
}
