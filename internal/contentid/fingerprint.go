package contentid

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// bufferSize bounds per-read memory so large files stream through the digest
// instead of loading whole.
const bufferSize = 32 * 1024

// Fingerprint computes the streaming xxHash64 digest of the file at path and
// returns it hex encoded. Failures here are per-file: callers skip the file
// and continue rather than aborting the session.
func Fingerprint(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	digest := xxhash.New()
	buf := make([]byte, bufferSize)
	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			_, _ = digest.Write(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("read %s: %w", path, readErr)
		}
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
