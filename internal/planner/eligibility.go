package planner

import (
	"strconv"
	"strings"
)

// Program level ranks. MS and MIT are peers.
const (
	LevelBS  = 1
	LevelMS  = 2
	LevelMIT = 2
	LevelPhD = 3
)

// ProgramLevel maps a degree program name to its rank. Unrecognized
// programs rank 0 and are eligible for nothing.
func ProgramLevel(program string) int {
	switch program {
	case "BS Computer Science":
		return LevelBS
	case "MS Computer Science":
		return LevelMS
	case "Master of Information Technology":
		return LevelMIT
	case "PhD Computer Science":
		return LevelPhD
	default:
		return 0
	}
}

// CourseLevel derives a course's rank from the numeric part of its code:
// up to 200 is undergraduate, up to 300 is masters, above that doctoral.
// Codes with no digits rank 0.
func CourseLevel(code string) int {
	var digits strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	num, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	switch {
	case num <= 200:
		return LevelBS
	case num <= 300:
		return LevelMS
	default:
		return LevelPhD
	}
}

// Eligible reports whether a student in the given program may enroll in the
// course with the given code.
func Eligible(program, code string) bool {
	return CourseLevel(code) <= ProgramLevel(program)
}
