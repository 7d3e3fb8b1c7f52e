// Package walkfile reads and writes the flat walk file format: UTF-8 text
// where every line is a comment, blank, or "<OID> = <TypeTag>: <value>",
// with a single trailing newline at end of file.
package walkfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fixturenet/walkgen/internal/logging"
)

var log = logging.L("walkfile")

// Write persists walk lines to path, one line per entry, newline
// terminated. The write goes through a temp file and rename so consumers
// never observe a half-written walk.
func Write(path string, lines []string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write walk file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename walk file: %w", err)
	}

	log.Debug("wrote walk file", logging.KeyOutput, path, "lines", len(lines))
	return nil
}
