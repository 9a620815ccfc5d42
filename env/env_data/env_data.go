package envdata

import (
	"os"
	"path/filepath"
)

// ExeDir is the directory of the running executable, or "" if it cannot be
// determined.
func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}

// EnvfilePath is the .env file next to the running executable, or "" if the
// executable cannot be located.
func EnvfilePath() string {
	dir := ExeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ".env")
}

// WorkdirEnvfilePath is the .env file in the current directory, or "" if
// the working directory cannot be determined.
func WorkdirEnvfilePath() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(wd, ".env")
}
