package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// pepperLength is the number of random bytes in a generated pepper.
const pepperLength = 32

// LoadPepper reads the pepper stored at file, generating and persisting a new
// one when the file does not exist yet. An empty path means no pepper.
func LoadPepper(file string) (string, error) {
	if file == "" {
		return "", nil
	}

	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	existing, err := os.ReadFile(file)
	if err == nil {
		return string(existing), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	buf := make([]byte, pepperLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(file, []byte(pepper), 0600); err != nil {
		return "", err
	}
	return pepper, nil
}
