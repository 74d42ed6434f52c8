// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxPartitionKeyBytes is the key size limit enforced by table storage.
const maxPartitionKeyBytes = 1024

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("partition_key", validatePartitionKey)
	}
}

// validatePartitionKey rejects values that cannot be used as a table storage
// partition key. The employee department is written as the partition key of
// every audit entry, so it is checked before the Record Store is touched.
func validatePartitionKey(fl validator.FieldLevel) bool {
	return IsValidPartitionKey(fl.Field().String())
}

// IsValidPartitionKey reports whether s is usable as a partition or row key.
func IsValidPartitionKey(s string) bool {
	if len(s) > maxPartitionKeyBytes {
		return false
	}
	for _, r := range s {
		switch r {
		case '/', '\\', '#', '?':
			return false
		}
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
