package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// NextDocumentNumber allocates the next number for a yearly sequence such as
// QT-2024-001. It reads the highest existing suffix under the prefix; callers
// run it inside the insert transaction and rely on the unique index on the
// number column plus a retry as the concurrency backstop.
func NextDocumentNumber(ctx context.Context, db *gorm.DB, table, column, kind string, now time.Time) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", kind, now.Year())

	var last string
	err := conn(ctx, db).
		Table(table).
		Select(column).
		Where(column+" LIKE ?", prefix+"%").
		Order("length(" + column + ") DESC, " + column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%03d", prefix, seq), nil
}
