package booking

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Genres is an ordered list of genre names stored as a postgres text[].
type Genres []string

func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(g).Value()
}

func (g *Genres) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*g = Genres(arr)
	return nil
}

// GormDBDataType picks the column type per dialect; only postgres has arrays.
func (Genres) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Clean trims entries and drops blanks and duplicates, keeping first-seen order.
func (g Genres) Clean() Genres {
	out := make(Genres, 0, len(g))
	seen := make(map[string]struct{}, len(g))
	for _, s := range g {
		s = trim(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
