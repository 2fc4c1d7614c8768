package policy

import (
	"testing"
	"time"

	"github.com/vntour/tourismweb/models"
)

func TestParseTargetType(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "Spot", want: TargetSpot},
		{raw: "post", want: TargetPost},
		{raw: "  COMMENT ", want: TargetComment},
		{raw: "Review", want: TargetReview},
		{raw: "user", want: TargetUser},
		{raw: "", wantErr: true},
		{raw: "thread", wantErr: true},
		{raw: "posts", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTargetType(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTargetType(%q) accepted invalid input, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTargetType(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseTargetType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeReportForcesServerFields(t *testing.T) {
	actor := Actor{ID: 42, Username: "mai", Role: models.RoleUser}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reported := uint(99)

	// The handler never passes submitted status/reporter/timestamp through,
	// so NormalizeReport is the single place those fields originate.
	got, err := NormalizeReport(actor, "post", 17, &reported, "  spam listing  ", now)
	if err != nil {
		t.Fatalf("NormalizeReport returned error: %v", err)
	}
	if got.ReporterUserID != actor.ID {
		t.Errorf("reporter id = %d, want actor id %d", got.ReporterUserID, actor.ID)
	}
	if got.Status != models.ReportStatusPending {
		t.Errorf("status = %q, want %q", got.Status, models.ReportStatusPending)
	}
	if !got.ReportedAt.Equal(now) {
		t.Errorf("reported at = %v, want %v", got.ReportedAt, now)
	}
	if got.TargetType != TargetPost || got.TargetID != 17 {
		t.Errorf("target = %s/%d, want %s/17", got.TargetType, got.TargetID, TargetPost)
	}
	if got.ReportedUserID == nil || *got.ReportedUserID != reported {
		t.Errorf("reported user id not carried through")
	}
	if got.Reason != "spam listing" {
		t.Errorf("reason = %q, want trimmed %q", got.Reason, "spam listing")
	}
}

func TestNormalizeReportRejections(t *testing.T) {
	actor := Actor{ID: 42}
	now := time.Now()

	if _, err := NormalizeReport(Actor{}, "post", 1, nil, "r", now); err == nil {
		t.Error("expected rejection for unauthenticated reporter")
	}
	if _, err := NormalizeReport(actor, "gallery", 1, nil, "r", now); err == nil {
		t.Error("expected rejection for unknown target type")
	}
	if _, err := NormalizeReport(actor, "post", 0, nil, "r", now); err == nil {
		t.Error("expected rejection for missing target id")
	}
}
