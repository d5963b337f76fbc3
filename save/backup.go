package save

import (
	"os"

	"github.com/joshuapare/savekit/internal/writer"
	"github.com/joshuapare/savekit/pkg/types"
)

// BackupSuffix is appended to the container path by Backup.
const BackupSuffix = ".bak"

// Backup copies the container at path to path+BackupSuffix atomically and
// returns the backup path. An existing backup is replaced.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", types.IOError("read container for backup", err)
	}
	dst := path + BackupSuffix
	w := &writer.FileWriter{Path: dst}
	if err := w.Write(data); err != nil {
		return "", types.IOError("write backup", err)
	}
	return dst, nil
}
