//go:build !devauth

package middleware

import "gorm.io/gorm"

func devViewerID(*gorm.DB) string { return "" }
