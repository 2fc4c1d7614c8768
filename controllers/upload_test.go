package controllers

import "testing"

func TestValidImageExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "beach.jpg", want: true},
		{filename: "beach.JPEG", want: true},
		{filename: "map.png", want: true},
		{filename: "clip.gif", want: true},
		{filename: "notes.pdf", want: false},
		{filename: "payload.php", want: false},
		{filename: "noextension", want: false},
		{filename: "", want: false},
		{filename: "double.jpg.exe", want: false},
	}
	for _, tt := range tests {
		if got := validImageExtension(tt.filename); got != tt.want {
			t.Errorf("validImageExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
