package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var providerTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

// ParseProviderTime parses the posting timestamp the search provider sends.
// The format varies between postings, so a few layouts are tried.
func ParseProviderTime(timeStr string) (time.Time, bool) {
	if timeStr == "" {
		return time.Time{}, false
	}
	for _, layout := range providerTimeLayouts {
		if t, err := time.Parse(layout, timeStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
