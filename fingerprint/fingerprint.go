// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package fingerprint derives privacy-preserving request fingerprints for vote auditing.
package fingerprint

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/danielhkuo/celebrate/middleware"
)

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 8 bytes are enough to spot repeat voters
	return hex.EncodeToString(sum[:8])
}

// FromRequest returns the hashed client IP and the user agent of r.
func FromRequest(r *http.Request, salt string) (ipHash, userAgent string) {
	return HashIP(middleware.GetClientIP(r), salt), r.UserAgent()
}
