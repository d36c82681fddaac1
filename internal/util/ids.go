// internal/util/ids.go
// Generator ID untuk request & evaluasi profil

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// IsID memeriksa apakah s adalah UUID valid (dipakai untuk X-Request-ID dari client).
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
