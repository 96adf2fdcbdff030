package fixture

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"

	"github.com/kuleuven/pathcases"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"golang.org/x/crypto/blake2b"
)

// DigestSuffix is appended to the fixture name to name its digest file.
const DigestSuffix = ".b2sum"

// Digest returns the hex encoded BLAKE2b-256 digest of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Writer writes fixture tables to a file system.
type Writer struct {
	Fs     afero.Fs
	Format Format
	// Digest enables writing a digest file next to the fixture,
	// in the format understood by b2sum -l 256 -c.
	Digest bool
}

// Write renders the records and writes them to the named file, creating
// parent directories as needed. Use Stream for writers that are not files.
func (w *Writer) Write(ctx context.Context, name string, records []pathcases.Record) (err error) {
	var buf bytes.Buffer

	if err = Encode(&buf, w.Format, records); err != nil {
		return err
	}

	if dir := filepath.Dir(name); dir != "." {
		if err = w.Fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := w.Fs.Create(name)
	if err != nil {
		return err
	}

	_, err = f.Write(buf.Bytes())

	// The digest must only describe a completely written file.
	if err = multierr.Append(err, f.Close()); err != nil {
		return err
	}

	logger := pathcases.Logger(ctx).WithField("file", name)

	if w.Digest {
		sum := fmt.Sprintf("%s  %s\n", Digest(buf.Bytes()), filepath.Base(name))

		if err = afero.WriteFile(w.Fs, name+DigestSuffix, []byte(sum), 0o644); err != nil {
			return err
		}

		logger = logger.WithField("digest", sum[:16])
	}

	logger.Infof("wrote %d records as %s", len(records), w.Format)

	return nil
}

// Stream renders the records to out.
func (w *Writer) Stream(ctx context.Context, out io.Writer, records []pathcases.Record) error {
	if err := Encode(out, w.Format, records); err != nil {
		return err
	}

	pathcases.Logger(ctx).Debugf("wrote %d records as %s", len(records), w.Format)

	return nil
}
