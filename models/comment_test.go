package models

import "testing"

func TestCommentBeforeCreateDefaultsImage(t *testing.T) {
	c := Comment{PostID: 1, UserID: 2, Content: "nice place"}
	if err := c.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if c.ImageURL != DefaultPostImageURL {
		t.Errorf("ImageURL = %q, want %q", c.ImageURL, DefaultPostImageURL)
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt was not stamped")
	}
}

func TestCommentBeforeCreateKeepsProvidedImage(t *testing.T) {
	c := Comment{Content: "photo attached", ImageURL: "/static/uploads/2026/08/pic.png"}
	if err := c.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if c.ImageURL != "/static/uploads/2026/08/pic.png" {
		t.Errorf("ImageURL = %q, want the provided path", c.ImageURL)
	}
}
