package runtime

import (
	"archive/tar"
	"bytes"
	"io"
)

// Writes a tar archive holding one entry to w.
//
// The header size must match the content length.
func writeTarEntry(w io.Writer, hdr *tar.Header, content io.Reader) error {
	tw := tar.NewWriter(w)

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	if hdr.Typeflag == tar.TypeReg {
		if _, err := io.Copy(tw, content); err != nil {
			return err
		}
	}

	return tw.Close()
}

// Returns a reader over data.
func bytesReader(data []byte) io.Reader {
	return bytes.NewReader(data)
}
