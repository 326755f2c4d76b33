package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID returns a short random alphanumeric id, used to tag dataset
// snapshots.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
