package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ApprovedClassesKey returns the cache key for the public approved-class
// listing at a given result cap. Limit 0 means unbounded.
func (r *CacheKeyStruct) ApprovedClassesKey(limit int64) string {
	return fmt.Sprintf("classes:approved:limit:%d", limit)
}

// InstructorsKey returns the cache key for the public instructor listing
// at a given result cap.
func (r *CacheKeyStruct) InstructorsKey(limit int64) string {
	return fmt.Sprintf("instructors:limit:%d", limit)
}

// ApprovedClassesPattern matches every cached approved-class listing,
// used for invalidation after class mutations.
func (r *CacheKeyStruct) ApprovedClassesPattern() string {
	return "classes:approved:limit:*"
}

var CacheKey = NewCacheKeyStruct()
