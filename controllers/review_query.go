package controllers

import (
	"strconv"
	"strings"

	"github.com/vntour/tourismweb/models"
)

// Accepted filter_by values for the spot review listing. Anything else that
// parses as an integer outside 1..5, or does not parse at all, behaves like
// "all".
const (
	reviewFilterAll    = "all"
	reviewFilterPhotos = "with-photos"
)

// Accepted sort_by values for the spot review listing.
const (
	reviewSortNewest  = "newest"
	reviewSortOldest  = "oldest"
	reviewSortHighest = "highest"
	reviewSortLowest  = "lowest"
)

// reviewFilterClause translates filter_by into a WHERE fragment. An empty
// clause means no filtering.
func reviewFilterClause(filterBy string) (string, []interface{}) {
	switch strings.TrimSpace(filterBy) {
	case "", reviewFilterAll:
		return "", nil
	case reviewFilterPhotos:
		return "image_url IS NOT NULL AND image_url <> '' AND image_url <> ?", []interface{}{models.DefaultReviewImage}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(filterBy)); err == nil {
		if n >= 1 && n <= 5 {
			return "rating = ?", []interface{}{n}
		}
	}
	return "", nil
}

// reviewSortOrder translates sort_by into an ORDER BY expression. Rating
// sorts tie-break on recency so equal ratings surface newest first.
func reviewSortOrder(sortBy string) string {
	switch strings.TrimSpace(sortBy) {
	case reviewSortOldest:
		return "created_at ASC"
	case reviewSortHighest:
		return "rating DESC, created_at DESC"
	case reviewSortLowest:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// paginateReviews computes the page count and clamps the requested page into
// [1, totalPages]; an empty result set pins the page to 1.
func paginateReviews(totalItems int64, page, pageSize int) (totalPages, current int) {
	if pageSize <= 0 {
		pageSize = 3
	}
	totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	current = page
	if totalPages == 0 {
		return 0, 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	return totalPages, current
}

// parseReviewPaging reads page/page_size with the listing defaults.
func parseReviewPaging(pageStr, sizeStr string) (int, int) {
	page := 1
	pageSize := 3
	if p, err := strconv.Atoi(pageStr); err == nil {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 50 {
		pageSize = s
	}
	return page, pageSize
}
