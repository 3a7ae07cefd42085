package version

import (
	"fmt"
	"runtime"

	"github.com/furniture-crm/crm-cli/internal/pkg/build"
)

const DevVersionValue = "dev"

// Version returns the output of the --version flag.
func Version() string {
	return "Version:    " + build.BuildVersion + "\n" +
		"Git commit: " + build.GitCommit + "\n" +
		"Build date: " + build.BuildDate + "\n" +
		"Go version: " + runtime.Version() + "\n" +
		"Os/Arch:    " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
}

// UserAgent of HTTP requests.
func UserAgent() string {
	return fmt.Sprintf("furniture-crm-cli/%s", build.BuildVersion)
}

func IsDev() bool {
	return build.BuildVersion == DevVersionValue
}
