package romio

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Container formats recognised by ReadROM.
const (
	mimeZip      = "application/zip"
	mimeGzip     = "application/gzip"
	mimeXz       = "application/x-xz"
	mimeSevenZip = "application/x-7z-compressed"
)

// containerType returns the container MIME type of data, or "" for a plain
// file. Formats built on zip (jar, docx, ...) are reported as zip.
func containerType(data []byte) string {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		for _, t := range []string{mimeZip, mimeGzip, mimeXz, mimeSevenZip} {
			if m.Is(t) {
				return t
			}
		}
	}
	return ""
}

// extract unpacks data if it is a supported container and returns it
// unchanged otherwise.
func extract(data []byte) ([]byte, error) {
	switch containerType(data) {
	case mimeZip:
		return extractZip(data)
	case mimeGzip:
		return extractGzip(data)
	case mimeXz:
		return extractXz(data)
	case mimeSevenZip:
		return extractSevenZip(data)
	default:
		return data, nil
	}
}

func extractZip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid zip archive: %w", err)
	}
	for _, f := range zr.File {
		if !f.Mode().IsRegular() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		return readMember(f.Name, rc)
	}
	return nil, ErrEmptyArchive
}

func extractSevenZip(data []byte) ([]byte, error) {
	zr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid 7z archive: %w", err)
	}
	for _, f := range zr.File {
		if !f.FileInfo().Mode().IsRegular() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		return readMember(f.Name, rc)
	}
	return nil, ErrEmptyArchive
}

func extractGzip(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid gzip stream: %w", err)
	}
	return readMember("gzip stream", gr)
}

func extractXz(data []byte) ([]byte, error) {
	xr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid xz stream: %w", err)
	}
	return readMember("xz stream", io.NopCloser(xr))
}

func readMember(name string, rc io.ReadCloser) ([]byte, error) {
	defer func() { _ = rc.Close() }()

	data, err := readLimited(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
