package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/exchange_audit_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeAuditCursor creates an opaque, URL-safe token from the last entry of a page.
func EncodeAuditCursor(cursor domain.AuditLogCursor) string {
	tokenStr := fmt.Sprintf("%s|%s", cursor.Timestamp.UTC().Format(timeFormat), cursor.AuditLogID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeAuditCursor parses a token produced by EncodeAuditCursor.
func DecodeAuditCursor(token string) (*domain.AuditLogCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}

	return &domain.AuditLogCursor{Timestamp: ts, AuditLogID: parts[1]}, nil
}
