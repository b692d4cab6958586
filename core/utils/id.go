package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short unique id, used for evaluation entries.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateToken returns an opaque URL-safe token of the given length, used
// for magic-link sign-in tokens.
func GenerateToken(length int) (string, error) {
	return gonanoid.Generate(idAlphabet, length)
}
