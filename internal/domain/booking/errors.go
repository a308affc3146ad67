package booking

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("record not found")

// ErrReferenceMissing is returned when a show points at a venue or artist the
// store does not have. Only the store's foreign key detects this.
var ErrReferenceMissing = errors.New("referenced record missing")

// MissingFieldsError lists required fields that were blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func required(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if trim(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingFieldsError{Fields: missing}
}

// translate maps gorm sentinels onto this package's errors.
func translate(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(ErrNotFound, msg)
	case errors.Is(err, gorm.ErrForeignKeyViolated), isForeignKeyFailure(err):
		return errors.Wrap(ErrReferenceMissing, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// isForeignKeyFailure catches dialects whose translator leaves foreign key
// errors untranslated. SQLite reports them only by message.
func isForeignKeyFailure(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
