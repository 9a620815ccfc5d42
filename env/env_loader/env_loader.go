package envloader

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// LoadFile reads KEY=VALUE lines from filename into the process environment.
// Blank lines and lines starting with # are skipped. Variables that already
// have a non-empty value are left alone.
func LoadFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)

		if len(parts) != 2 {
			return errors.New("Line '" + line + "' has invalid format")
		}

		parts[0] = strings.Trim(parts[0], " ")
		parts[1] = strings.Trim(parts[1], " ")

		if os.Getenv(parts[0]) == "" {
			os.Setenv(parts[0], parts[1])
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	return nil
}

// LoadFileIfExists is LoadFile that treats a missing file as empty.
func LoadFileIfExists(filename string) error {
	err := LoadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func GetEnv(name, def string) string {
	envar := os.Getenv(name)
	if envar == "" {
		return def
	}
	return envar
}
