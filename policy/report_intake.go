package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/vntour/tourismweb/models"
)

// Target kinds a report may point at. The set is closed; free-form strings
// never reach storage.
const (
	TargetSpot    = "Spot"
	TargetPost    = "Post"
	TargetComment = "Comment"
	TargetReview  = "Review"
	TargetUser    = "User"
)

var targetTypes = map[string]string{
	"spot":    TargetSpot,
	"post":    TargetPost,
	"comment": TargetComment,
	"review":  TargetReview,
	"user":    TargetUser,
}

// ParseTargetType validates raw against the closed target-kind set and
// returns the canonical value.
func ParseTargetType(raw string) (string, error) {
	t, ok := targetTypes[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("invalid report target type: %q", raw)
	}
	return t, nil
}

// NormalizeReport builds a persistable report from validated submission
// fields. Reporter identity, timestamp and status always come from the server
// side; whatever the payload claimed for them is discarded.
func NormalizeReport(actor Actor, targetType string, targetID uint, reportedUserID *uint, reason string, now time.Time) (models.Report, error) {
	if actor.ID == 0 {
		return models.Report{}, fmt.Errorf("report requires an authenticated reporter")
	}
	t, err := ParseTargetType(targetType)
	if err != nil {
		return models.Report{}, err
	}
	if targetID == 0 {
		return models.Report{}, fmt.Errorf("report target id is required")
	}
	return models.Report{
		ReporterUserID: actor.ID,
		ReportedUserID: reportedUserID,
		TargetType:     t,
		TargetID:       targetID,
		Reason:         strings.TrimSpace(reason),
		Status:         models.ReportStatusPending,
		ReportedAt:     now,
	}, nil
}
