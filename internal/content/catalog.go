// Package content holds the static catalog served on the marketing and
// browsing pages and loaded into the database by cmd/seed.
package content

import (
	"time"

	"fikrswap-academy-be/internal/entity"
)

// Categories drives the catalog filter bar. "All Courses" is the
// identity filter.
var Categories = []string{
	"All Courses",
	"Islamic Studies",
	"Arabic Calligraphy",
	"Quranic Sciences",
	"Islamic Arts & Culture",
}

// Testimonial is a homepage quote card.
type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Quote string `json:"quote"`
}

var Testimonials = []Testimonial{
	{
		Name:  "Ahmed Hassan",
		Role:  "Islamic Studies Student",
		Quote: "FikrSwap Academy has transformed my learning experience. The live classes and community support made complex topics accessible and engaging.",
	},
	{
		Name:  "Fatima Ali",
		Role:  "Arabic Calligraphy Enthusiast",
		Quote: "Learning Arabic calligraphy here has been a joy. The instructors are patient, knowledgeable, and provide personalized feedback that has helped me improve rapidly.",
	},
	{
		Name:  "Mohammad Khan",
		Role:  "Quranic Sciences Learner",
		Quote: "The depth of knowledge and teaching methods at FikrSwap Academy are unparalleled. I've gained insights I couldn't find anywhere else.",
	},
}

// SeedCourses is the launch catalog.
func SeedCourses() []*entity.Course {
	return []*entity.Course{
		{
			Title:      "Foundations of Islamic Jurisprudence",
			Instructor: "Dr. Omar Farooq",
			Category:   "Islamic Studies",
			Level:      entity.CourseLevelBeginner,
			Duration:   "8 weeks",
			Rating:     4.9,
			Students:   1243,
			Featured:   true,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Arabic Calligraphy for Beginners",
			Instructor: "Fatima Zahra",
			Category:   "Arabic Calligraphy",
			Level:      entity.CourseLevelBeginner,
			Duration:   "6 weeks",
			Rating:     4.8,
			Students:   986,
			Featured:   true,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Tajweed: The Art of Quranic Recitation",
			Instructor: "Aisha Rahman",
			Category:   "Quranic Sciences",
			Level:      entity.CourseLevelIntermediate,
			Duration:   "12 weeks",
			Rating:     4.9,
			Students:   1578,
			Featured:   true,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Islamic Geometric Patterns",
			Instructor: "Yusuf Ali",
			Category:   "Islamic Arts & Culture",
			Level:      entity.CourseLevelIntermediate,
			Duration:   "10 weeks",
			Rating:     4.7,
			Students:   842,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Advanced Arabic Grammar",
			Instructor: "Dr. Omar Farooq",
			Category:   "Arabic Calligraphy",
			Level:      entity.CourseLevelAdvanced,
			Duration:   "14 weeks",
			Rating:     4.8,
			Students:   526,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Comparative Islamic Theology",
			Instructor: "Aisha Rahman",
			Category:   "Islamic Studies",
			Level:      entity.CourseLevelAdvanced,
			Duration:   "16 weeks",
			Rating:     4.6,
			Students:   387,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Introduction to Islamic Philosophy",
			Instructor: "Dr. Omar Farooq",
			Category:   "Islamic Studies",
			Level:      entity.CourseLevelBeginner,
			Duration:   "8 weeks",
			Rating:     4.9,
			Students:   1123,
			Status:     entity.CourseStatusPublished,
		},
		{
			Title:      "Manuscript Illumination Techniques",
			Instructor: "Fatima Zahra",
			Category:   "Islamic Arts & Culture",
			Level:      entity.CourseLevelIntermediate,
			Duration:   "9 weeks",
			Rating:     4.8,
			Students:   654,
			Status:     entity.CourseStatusPublished,
		},
	}
}

// SeedLiveClasses is the upcoming class schedule, relative to seed time
// so listings always show future sessions.
func SeedLiveClasses(now time.Time) []*entity.LiveClass {
	return []*entity.LiveClass{
		{
			Title:      "Understanding Legal Maxims in Islamic Jurisprudence",
			Instructor: "Dr. Omar Farooq",
			Category:   "Islamic Studies",
			Topics: []string{
				"Five Major Legal Maxims",
				"Application in Contemporary Issues",
				"Case Studies",
			},
			StartTime: now.Add(48 * time.Hour),
			Duration:  "1 hour",
			Attendees: 24,
		},
		{
			Title:      "Pen Techniques for Arabic Calligraphy",
			Instructor: "Fatima Zahra",
			Category:   "Arabic Calligraphy",
			Topics: []string{
				"Holding the Qalam",
				"Basic Strokes",
				"Letter Proportions",
			},
			StartTime: now.Add(96 * time.Hour),
			Duration:  "1.5 hours",
		},
		{
			Title:      "Introduction to Tajweed Rules",
			Instructor: "Aisha Rahman",
			Category:   "Quranic Sciences",
			Topics: []string{
				"Articulation Points",
				"Rules of Noon Sakinah",
				"Practical Recitation",
			},
			StartTime: now.Add(168 * time.Hour),
			Duration:  "1.5 hours",
		},
	}
}

// CurriculumLesson is one lesson row of the seed outline.
type CurriculumLesson struct {
	Title    string
	Duration string
	Preview  bool
}

// CurriculumSection is one collapsible block of the seed outline.
type CurriculumSection struct {
	Section string
	Lessons []CurriculumLesson
}

// SeedCurriculum returns the curriculum outline for one course.
func SeedCurriculum() []CurriculumSection {
	type lesson = CurriculumLesson
	return []CurriculumSection{
		{
			Section: "Introduction to Islamic Jurisprudence",
			Lessons: []lesson{
				{Title: "What is Islamic Jurisprudence?", Duration: "12 min", Preview: true},
				{Title: "Historical Development of Fiqh", Duration: "18 min"},
				{Title: "Major Schools of Thought", Duration: "22 min"},
				{Title: "Module 1 Reading Materials", Duration: "10 min"},
			},
		},
		{
			Section: "Sources of Islamic Law",
			Lessons: []lesson{
				{Title: "The Quran as a Source of Law", Duration: "20 min"},
				{Title: "The Sunnah as a Source of Law", Duration: "17 min"},
				{Title: "Consensus and Analogy", Duration: "15 min"},
			},
		},
	}
}
