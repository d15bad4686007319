package utils

import (
	"clinic-service/internal/pkg/constvars"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateObjectName builds a unique storage key under prefix keeping the
// extension of the uploaded file name.
func GenerateObjectName(prefix, originalName string) string {
	extension := strings.ToLower(filepath.Ext(originalName))
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s%s", prefix, timestamp, uuid.NewString(), extension)
}
