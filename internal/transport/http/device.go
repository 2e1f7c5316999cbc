package httpapi

import "github.com/mssola/useragent"

// deviceLabel renders a short display name for the client device, e.g.
// "Chrome on Mac OS X". It feeds the audit trail only.
func deviceLabel(ua string) string {
	if ua == "" {
		return "Unknown Device"
	}
	parsed := useragent.New(ua)
	browser, _ := parsed.Browser()
	os := parsed.OS()
	if browser == "" && os == "" {
		return "Unknown Device"
	}
	if browser == "" {
		return os
	}
	if os == "" {
		return browser
	}
	return browser + " on " + os
}
