// Package urlutil предоставляет утилиты для безопасного логирования URL и секретов.
package urlutil

import (
	"net/url"
	"strings"
)

// MaskURL оставляет от URL только scheme и host.
// Путь и query могут содержать токены, поэтому не выводятся.
//
//	"http://pushgateway:9091/metrics?token=x" → "http://pushgateway:9091/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}

// StripCredentials возвращает URL без userinfo и query.
// В отличие от MaskURL путь сохраняется: он нужен в логах запросов к API.
func StripCredentials(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "***invalid-url***"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// MaskToken оставляет первые четыре символа токена.
// Короткие токены маскируются полностью.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + strings.Repeat("*", 3)
}
