package meta

import (
	"BlueprintDock/internal/constants"
	"fmt"
	"os"
	"time"
)

// WriteBackup writes data (the original, unmodified input bytes) to a
// timestamped sibling of src and returns the backup path.
func WriteBackup(src string, data []byte) (string, error) {
	path := fmt.Sprintf("%s%s%d", src, constants.BackupInfix, time.Now().UnixMilli())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
