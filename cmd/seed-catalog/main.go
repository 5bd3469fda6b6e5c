package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/database"
	"github.com/dangal-ics/planner-backend/internal/logger"
	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/repository"
	"github.com/dangal-ics/planner-backend/internal/service"
)

// offering is one seeded catalog row.
type offering struct {
	code    string
	title   string
	units   int
	section string
	days    string
	times   string
	room    string
	desc    string
}

// offerings is the semester's section list. Hyphenated section labels are
// lab sections; TBA sections have no fixed meeting slot.
var offerings = []offering{
	{"CMSC 11", "Introduction to Computer Science", 3, "A", "TTh", "7:00-8:30", "ICS MH 1", "Overview of computing as a science and profession."},
	{"CMSC 11", "Introduction to Computer Science", 3, "B", "WF", "10:00-11:30", "ICS MH 2", "Overview of computing as a science and profession."},
	{"CMSC 22", "Object-Oriented Programming", 3, "A", "TTh", "8:30-10:00", "ICS MH 3", "Object-oriented concepts, design, and implementation."},
	{"CMSC 22", "Object-Oriented Programming", 3, "A-1", "W", "1:00-4:00", "PC Lab 4", "Object-oriented concepts, design, and implementation."},
	{"CMSC 22", "Object-Oriented Programming", 3, "A-2", "F", "1:00-4:00", "PC Lab 4", "Object-oriented concepts, design, and implementation."},
	{"CMSC 22", "Object-Oriented Programming", 3, "B", "WF", "8:30-10:00", "ICS MH 3", "Object-oriented concepts, design, and implementation."},
	{"CMSC 22", "Object-Oriented Programming", 3, "B-1", "T", "1:00-4:00", "PC Lab 3", "Object-oriented concepts, design, and implementation."},
	{"CMSC 57", "Discrete Mathematical Structures II", 3, "A", "TTh", "10:00-11:30", "ICS LH 1", "Logic, combinatorics, and graph theory for computing."},
	{"CMSC 100", "Web Programming", 3, "A", "WF", "2:30-4:00", "ICS MH 1", "Design and implementation of web applications."},
	{"CMSC 100", "Web Programming", 3, "B", "TBA", "TBA", "TBA", "Design and implementation of web applications."},
	{"CMSC 127", "File Processing and Database Systems", 3, "A", "TTh", "1:00-2:30", "ICS LH 3", "Relational modeling, SQL, and database application design."},
	{"CMSC 127", "File Processing and Database Systems", 3, "A-1", "S", "10:00-1:00", "PC Lab 2", "Relational modeling, SQL, and database application design."},
	{"CMSC 141", "Automata and Language Theory", 3, "A", "WF", "11:30-1:00", "ICS LH 2", "Formal languages, automata, and computability."},
	{"CMSC 142", "Design and Analysis of Algorithms", 3, "A", "TTh", "2:30-4:00", "ICS LH 2", "Algorithm design techniques and complexity analysis."},
	{"CMSC 150", "Numerical and Symbolic Computation", 3, "A", "W", "4:00-7:00", "ICS MH 4", "Numerical methods and scientific computing."},
	{"CMSC 200", "Undergraduate Thesis", 3, "A", "TBA", "TBA", "TBA", "Independent research under faculty supervision."},
	{"CMSC 250", "Advanced Algorithms", 3, "A", "T", "4:00-7:00", "ICS GR 1", "Advanced algorithmic paradigms and lower bounds."},
	{"CMSC 265", "Advanced Database Systems", 3, "A", "Th", "4:00-7:00", "ICS GR 1", "Query optimization, distributed and non-relational stores."},
	{"CMSC 265", "Advanced Database Systems", 3, "A-1", "S", "7:00-10:00", "PC Lab 1", "Query optimization, distributed and non-relational stores."},
	{"CMSC 280", "Machine Learning", 3, "A", "S", "1:00-4:00", "ICS GR 2", "Statistical learning theory and practice."},
	{"CMSC 300", "Master's Thesis", 6, "A", "TBA", "TBA", "TBA", "Graduate research culminating in a thesis."},
	{"CMSC 390", "Doctoral Seminar", 1, "A", "F", "4:00-6:00", "ICS GR 2", "Research colloquium for doctoral candidates."},
	{"CMSC 400", "Doctoral Dissertation", 12, "A", "TBA", "TBA", "TBA", "Original research culminating in a dissertation."},
}

// curricula links course codes into each program's course list.
var curricula = map[string][]string{
	"BS Computer Science": {
		"CMSC 11", "CMSC 22", "CMSC 57", "CMSC 100", "CMSC 127",
		"CMSC 141", "CMSC 142", "CMSC 150", "CMSC 200",
	},
	"MS Computer Science": {
		"CMSC 100", "CMSC 127", "CMSC 142", "CMSC 250", "CMSC 265",
		"CMSC 280", "CMSC 300",
	},
	"Master of Information Technology": {
		"CMSC 100", "CMSC 127", "CMSC 265", "CMSC 280", "CMSC 300",
	},
	"PhD Computer Science": {
		"CMSC 250", "CMSC 265", "CMSC 280", "CMSC 390", "CMSC 400",
	},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)

	fmt.Printf("=== Seeding %d Course Offerings ===\n", len(offerings))

	for _, o := range offerings {
		course := model.NewCourse(o.code, o.title, o.units, o.section, o.days, o.times, o.room, o.desc)
		if err := courseRepo.CreateOffering(ctx, course); err != nil {
			log.Fatal().Err(err).Str("code", o.code).Str("section", o.section).Msg("Failed to seed offering")
		}
	}

	linked := 0
	for _, program := range service.Programs {
		for _, code := range curricula[program] {
			if err := courseRepo.AddToProgram(ctx, program, code); err != nil {
				log.Fatal().Err(err).Str("program", program).Str("code", code).Msg("Failed to link curriculum")
			}
			linked++
		}
	}

	fmt.Printf("\nSeed completed! %d offerings, %d curriculum links.\n", len(offerings), linked)
}
