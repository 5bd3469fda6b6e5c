package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key for a student's login session
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:%d", studentID)
}

// CatalogOfferingsKey returns the cache key for the full course-offerings list
func (r *CacheKeyStruct) CatalogOfferingsKey() string {
	return "catalog:offerings"
}

// ProgramCoursesKey returns the cache key for a program's curriculum list
func (r *CacheKeyStruct) ProgramCoursesKey(program string) string {
	return fmt.Sprintf("catalog:program:%s", program)
}

// ScheduleChannel returns the Redis PubSub channel name for a student's
// schedule-change notifications
func (r *CacheKeyStruct) ScheduleChannel(studentID int) string {
	return fmt.Sprintf("student:%d:schedule", studentID)
}

var CacheKey = NewCacheKeyStruct()
