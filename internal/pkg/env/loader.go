package env

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// LoadDotEnv merges dotenv files found in the dir into a copy of osEnvs.
// Existing ENVs take precedence, an unreadable file is reported as a warning and skipped.
func LoadDotEnv(logger log.Logger, osEnvs *Map, fs afero.Fs, dir string) *Map {
	envs := FromMap(osEnvs.ToMap())
	for _, file := range Files() {
		path := filepath.Join(dir, file)
		info, err := fs.Stat(path)
		switch {
		case err != nil && os.IsNotExist(err):
			continue
		case err != nil:
			logger.Warnf(`Cannot check if path "%s" exists: %s`, path, err)
			continue
		case info.IsDir():
			continue
		}

		fileEnvs, err := LoadEnvFile(fs, path)
		if err != nil {
			logger.Warn(err.Error())
			continue
		}

		logger.Debugf(`Loaded env file "%s".`, path)
		envs.Merge(fileEnvs, false)
	}
	return envs
}

func LoadEnvFile(fs afero.Fs, path string) (*Map, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, `cannot read env file "%s"`, path)
	}
	envs, err := FromString(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, `cannot parse env file "%s"`, path)
	}
	return envs, nil
}
