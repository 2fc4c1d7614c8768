package controllers

import (
	"fmt"
	"testing"

	"github.com/vntour/tourismweb/models"
)

func TestReviewFilterClause(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		in := fmt.Sprintf("%d", rating)
		clause, args := reviewFilterClause(in)
		if clause != "rating = ?" {
			t.Fatalf("filter %q: clause = %q, want rating match", in, clause)
		}
		if len(args) != 1 || args[0].(int) != rating {
			t.Fatalf("filter %q: args = %v, want [%d]", in, args, rating)
		}
	}

	// Out-of-range integers and unknown strings behave like "all".
	for _, in := range []string{"0", "6", "-1", "99", "best", ""} {
		clause, args := reviewFilterClause(in)
		if clause != "" || args != nil {
			t.Fatalf("filter %q: expected no clause, got %q %v", in, clause, args)
		}
	}

	clause, args := reviewFilterClause("with-photos")
	if clause == "" || len(args) != 1 {
		t.Fatalf("with-photos filter missing clause or args: %q %v", clause, args)
	}
	if args[0].(string) != models.DefaultReviewImage {
		t.Fatalf("with-photos filter must exclude the placeholder, got %v", args[0])
	}
}

func TestReviewSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "newest", want: "created_at DESC"},
		{in: "oldest", want: "created_at ASC"},
		{in: "highest", want: "rating DESC, created_at DESC"},
		{in: "lowest", want: "rating ASC, created_at DESC"},
		{in: "", want: "created_at DESC"},
		{in: "sideways", want: "created_at DESC"},
	}
	for _, tt := range tests {
		if got := reviewSortOrder(tt.in); got != tt.want {
			t.Errorf("reviewSortOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaginateReviews(t *testing.T) {
	tests := []struct {
		total       int64
		page        int
		pageSize    int
		wantPages   int
		wantCurrent int
	}{
		{total: 7, page: 1, pageSize: 3, wantPages: 3, wantCurrent: 1},
		{total: 7, page: 0, pageSize: 3, wantPages: 3, wantCurrent: 1},
		{total: 7, page: 10, pageSize: 3, wantPages: 3, wantCurrent: 3},
		{total: 7, page: -2, pageSize: 3, wantPages: 3, wantCurrent: 1},
		{total: 0, page: 5, pageSize: 3, wantPages: 0, wantCurrent: 1},
		{total: 9, page: 3, pageSize: 3, wantPages: 3, wantCurrent: 3},
		{total: 1, page: 1, pageSize: 3, wantPages: 1, wantCurrent: 1},
	}
	for _, tt := range tests {
		pages, current := paginateReviews(tt.total, tt.page, tt.pageSize)
		if pages != tt.wantPages || current != tt.wantCurrent {
			t.Errorf("paginateReviews(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.total, tt.page, tt.pageSize, pages, current, tt.wantPages, tt.wantCurrent)
		}
	}
}

func TestParseReviewPaging(t *testing.T) {
	page, size := parseReviewPaging("", "")
	if page != 1 || size != 3 {
		t.Fatalf("defaults = (%d, %d), want (1, 3)", page, size)
	}
	page, size = parseReviewPaging("4", "10")
	if page != 4 || size != 10 {
		t.Fatalf("parsed = (%d, %d), want (4, 10)", page, size)
	}
	// Oversized page_size falls back to the default rather than scanning the table.
	_, size = parseReviewPaging("1", "500")
	if size != 3 {
		t.Fatalf("oversized page_size = %d, want default 3", size)
	}
}
