package render

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/matzehuels/dmrender/pkg/errors"
)

// WriteFileAtomic writes data to path so the destination is either fully
// written or untouched. The bytes land in a uniquely named temporary file
// in the target directory first, which is then renamed over the
// destination; the rename is atomic on POSIX filesystems. On failure the
// temporary file is removed.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeIO, err, "failed to replace %s", path)
	}
	return nil
}
