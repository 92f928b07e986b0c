package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/jpas/internal/configs"
	kerrors "github.com/PolarWolf314/jpas/internal/errors"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Dir is where jpas.json is created. Empty means the working directory.
	Dir string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ConfigPath is the path of the created jpas.json.
	ConfigPath string
}

// createConfigFile creates path, failing if it already exists. O_EXCL so a
// concurrent init cannot be overwritten either. Tests replace it.
var createConfigFile = func(path string) (io.WriteCloser, error) {
	// #nosec G302 -- jpas.json holds no secrets.
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// Init writes a default jpas.json.
//
// Returns ErrAlreadyDone if jpas.json already exists; the existing file is
// left untouched. A jpas.json that could not be fully written is removed.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	configPath := configs.ProjectConfigPath(opts.Dir)

	data, err := configs.MarshalProjectConfig(&configs.ProjectConfig{})
	if err != nil {
		return nil, err
	}

	f, err := createConfigFile(configPath)
	if os.IsExist(err) {
		return nil, kerrors.ErrAlreadyDone
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(configPath)
		return nil, fmt.Errorf("%w: writing %s: %w", kerrors.ErrIO, configPath, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(configPath)
		return nil, fmt.Errorf("%w: closing %s: %w", kerrors.ErrIO, configPath, err)
	}

	return &InitResult{ConfigPath: configPath}, nil
}
