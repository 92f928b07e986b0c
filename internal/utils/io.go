package utils

import (
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

// ReadAll reads r until EOF. Errors match ErrIO.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading input: %v", kerrors.ErrIO, err)
	}
	return data, nil
}

// ReadFile reads the file at path. Errors match ErrIO and keep the
// underlying *fs.PathError reachable through errors.As.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	return data, nil
}

// WriteFile replaces the contents of path with data. New files are created
// with owner-only permissions; existing files keep their mode.
func WriteFile(path string, data []byte) error {
	// #nosec G306 -- entries hold ciphertext but are still kept private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	return nil
}
