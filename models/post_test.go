package models

import "testing"

func TestValidPostType(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "Spot", want: true},
		{in: "Guidebook", want: true},
		{in: "Experience", want: true},
		{in: "Article", want: true},
		{in: "spot", want: false},
		{in: "Review", want: false},
		{in: "", want: false},
	}
	for _, tt := range tests {
		if got := ValidPostType(tt.in); got != tt.want {
			t.Errorf("ValidPostType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPostBeforeCreateForcesPendingStatus(t *testing.T) {
	p := Post{Status: PostStatusApproved}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if p.Status != PostStatusPending {
		t.Errorf("Status = %q, want %q", p.Status, PostStatusPending)
	}
	if p.ImageURL != DefaultPostImageURL {
		t.Errorf("ImageURL = %q, want %q", p.ImageURL, DefaultPostImageURL)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt was not stamped")
	}
}

func TestPostBeforeCreateKeepsProvidedImage(t *testing.T) {
	p := Post{ImageURL: "/static/uploads/2026/08/custom.jpg"}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if p.ImageURL != "/static/uploads/2026/08/custom.jpg" {
		t.Errorf("ImageURL = %q, want the provided path", p.ImageURL)
	}
}
