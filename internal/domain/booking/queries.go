package booking

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

func showsByStart(db *gorm.DB) *gorm.DB {
	return db.Order("start_time ASC").Order("id ASC")
}

// upcomingCounts batch-loads the shows of the given parents in one query and
// counts the ones at or after now. column is "venue_id" or "artist_id".
func upcomingCounts(db *gorm.DB, column string, ids []uint, now time.Time) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var shows []Show
	if err := db.Model(&Show{}).
		Select("id", "venue_id", "artist_id", "start_time").
		Where(column+" IN ?", ids).
		Find(&shows).Error; err != nil {
		return nil, err
	}

	for _, s := range shows {
		if s.IsPast(now) {
			continue
		}
		if column == "venue_id" {
			counts[s.VenueID]++
		} else {
			counts[s.ArtistID]++
		}
	}
	return counts, nil
}

// matchesName is the site's search rule: case-insensitive substring of the
// name only. An empty term matches everything.
func matchesName(name, term string) bool {
	return containsFold(name, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
