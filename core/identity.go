package core

import (
	"strings"

	"github.com/google/uuid"
)

// widgetID returns the caller-supplied identifier, or generates one. The
// result is stored once at construction and never regenerated for the
// lifetime of the instance.
func widgetID(id string) string {
	id = strings.TrimSpace(id)
	if id != "" {
		return id
	}
	return uuid.NewString()
}
