package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value violates unique constraint"): // postgres 23505
		return true
	case strings.Contains(msg, "Error 1062"): // mysql
		return true
	case strings.Contains(msg, "UNIQUE constraint failed"): // sqlite 2067
		return true
	}
	return false
}

func IsForeignKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "violates foreign key constraint"): // postgres 23503
		return true
	case strings.Contains(msg, "Error 1451"), strings.Contains(msg, "Error 1452"): // mysql
		return true
	case strings.Contains(msg, "FOREIGN KEY constraint failed"): // sqlite 787
		return true
	}
	return false
}
