package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// bindJSONBody reads and decodes the request body into dst.
//
// A Content-Type other than JSON skips parsing entirely, and an empty (or
// whitespace-only) body counts as "no body"; both return (false, nil).
// A body that is present but not valid JSON is fatal for the request.
func bindJSONBody(c *gin.Context, dst any) (bool, error) {
	if ct := c.GetHeader("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return false, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return false, fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("Invalid JSON in request body: %w", err)
	}
	return true, nil
}

// deleteRequest is the body shape shared by all delete operations.
type deleteRequest struct {
	ID string `json:"id"`
}

// firstNonEmpty resolves the storage-style/client-style field pairs that
// may both appear in a payload: the first (storage-style) value wins.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
