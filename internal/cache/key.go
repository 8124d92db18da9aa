package cache

import (
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

// Key namespaces
const (
	NamespaceCheckins  = "checkins"
	NamespaceAnalytics = "analytics"
)

// Key identifies one cached result: a subject, a date range and a page.
// Absent bounds serialize as empty strings so a nil bound and a real date
// never collide.
type Key struct {
	Namespace string
	Subject   string
	Start     *models.Date
	End       *models.Date
	Page      int
	Size      int
}

// CheckinsKey is the key for one page of a user's check-in listing.
func CheckinsKey(userID string, f models.CheckinFilter, page, size int) Key {
	return Key{Namespace: NamespaceCheckins, Subject: userID, Start: f.Start, End: f.End, Page: page, Size: size}
}

// AnalyticsKey is the key for a user's advanced analytics over a range.
func AnalyticsKey(userID string, f models.CheckinFilter) Key {
	return Key{Namespace: NamespaceAnalytics, Subject: userID, Start: f.Start, End: f.End}
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d",
		k.Namespace, k.Subject, dateString(k.Start), dateString(k.End), k.Page, k.Size)
}

func dateString(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
