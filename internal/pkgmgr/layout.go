package pkgmgr

import (
	"path/filepath"
	"runtime"
)

// ScriptsDir returns the directory holding an environment's entry points:
// bin on POSIX, Scripts on Windows.
func ScriptsDir(envPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envPath, "Scripts")
	}
	return filepath.Join(envPath, "bin")
}

// ActivationScript returns the platform activation entry point.
func ActivationScript(envPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(ScriptsDir(envPath), "activate.bat")
	}
	return filepath.Join(ScriptsDir(envPath), "activate")
}

// PipPath returns the environment's pip executable.
func PipPath(envPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(ScriptsDir(envPath), "pip.exe")
	}
	return filepath.Join(ScriptsDir(envPath), "pip")
}

// PythonPath returns the environment's interpreter.
func PythonPath(envPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(ScriptsDir(envPath), "python.exe")
	}
	return filepath.Join(ScriptsDir(envPath), "python")
}
