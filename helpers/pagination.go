package helpers

import (
	"fmt"
	"strconv"
)

// Pages are 5 entities wide. Listings fetch from an offset with no limit
// (users are the exception, capped at PageSize+1) and the sixth returned
// entity is what proves another page exists.
const PageSize = 5

// PageOffset maps the external 1-indexed page parameter to a scan offset.
// Missing or malformed pages read as page 1.
func PageOffset(page string) int64 {
	if page == "" {
		return 0
	}
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		return 0
	}
	return int64(PageSize * (p - 1))
}

// Paginate slices one page out of a scan result fetched at offset.
// With PageSize+1 or more entities the first PageSize are the page and a
// next link is synthesized; otherwise everything returned is the page.
// Total is offset plus the number of entities seen from the offset onward —
// NOT the collection size. That is the contract callers already rely on.
func Paginate[T any](items []T, offset int64, nextBase string) (page []T, next string, total int64) {
	total = offset + int64(len(items))
	if len(items) >= PageSize+1 {
		next = fmt.Sprintf("%s?page=%d", nextBase, offset/PageSize+2)
		return items[:PageSize], next, total
	}
	return items, "", total
}
