package cli

import (
	"fmt"
	"io"
	"os"

	"adouble-savior/adouble"
	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adstruct"
	"github.com/pkg/errors"
)

type (
	LoadOptions struct {
		// HeaderSize caps how many bytes are read as the header buffer.
		HeaderSize int
		// FileSize replaces the size reported by the file system when non-zero.
		FileSize uint64
	}
	// Sidecar is a validated header together with the open file it came from.
	Sidecar struct {
		Path   string
		File   *os.File
		Struct *adstruct.Struct
	}
)

const DefaultHeaderSize = 65536

func ReadHeader(file *os.File, headerSize int) ([]byte, uint64, error) {
	info, err := file.Stat()
	if err != nil {
		err := errors.Wrap(err, "ReadHeader error: stat")
		return nil, 0, err
	}
	if headerSize <= 0 {
		headerSize = DefaultHeaderSize
	}
	fileSize := uint64(info.Size())
	n := headerSize
	if uint64(n) > fileSize {
		n = int(fileSize)
	}

	bs := make([]byte, n)
	if _, err := io.ReadFull(file, bs); err != nil {
		err := errors.Wrapf(err, "ReadHeader error: read %d bytes", n)
		return nil, 0, err
	}
	return bs, fileSize, nil
}

// LoadSidecar opens path and validates its header. The caller closes the result.
func LoadSidecar(path string, opts LoadOptions) (*Sidecar, error) {
	file, err := os.Open(path)
	if err != nil {
		err := errors.Wrap(err, "LoadSidecar error")
		return nil, err
	}

	bs, fileSize, err := ReadHeader(file, opts.HeaderSize)
	if err != nil {
		file.Close()
		return nil, err
	}
	if opts.FileSize > 0 {
		fileSize = opts.FileSize
	}

	s, err := adouble.Parse(bs, fileSize)
	if err != nil {
		file.Close()
		err := errors.Wrapf(err, `LoadSidecar error: "%s" rejected`, path)
		return nil, err
	}

	return &Sidecar{
		Path:   path,
		File:   file,
		Struct: s,
	}, nil
}

func (r *Sidecar) Close() error {
	return r.File.Close()
}

func (r *Sidecar) Report(debug bool) ([]byte, error) {
	return adouble.Report(r.Struct, debug)
}

// Extract copies entry id to a new file at to and returns the number of bytes written.
func (r *Sidecar) Extract(id adentry.ID, to string) (int64, error) {
	reader, ok := r.Struct.SectionReader(id, r.File)
	if !ok {
		return 0, fmt.Errorf(`Extract error: entry "%s" is not present in "%s"`, id, r.Path)
	}

	out, err := os.Create(to)
	if err != nil {
		err := errors.Wrap(err, "Extract error")
		return 0, err
	}
	n, err := io.Copy(out, reader)
	if err != nil {
		out.Close()
		err := errors.Wrapf(err, `Extract error: copy entry "%s"`, id)
		return n, err
	}
	if err := out.Close(); err != nil {
		err := errors.Wrap(err, "Extract error")
		return n, err
	}
	return n, nil
}
