package timetable

import (
	"cmp"
	"slices"
)

// ExtractTeachers returns every distinct teacher, keyed by full name with the
// first occurrence winning, sorted by full name.
func ExtractTeachers(lessons []Lesson) []Teacher {
	seen := make(map[string]bool)
	teachers := []Teacher{}
	for _, lesson := range lessons {
		for _, t := range lesson.Teachers {
			if seen[t.FullName] {
				continue
			}
			seen[t.FullName] = true
			teachers = append(teachers, t)
		}
	}

	slices.SortStableFunc(teachers, func(a, b Teacher) int {
		return cmp.Compare(a.FullName, b.FullName)
	})
	return teachers
}

// ExtractThemes returns every distinct (name, format) pair sorted by name.
func ExtractThemes(lessons []Lesson) []Theme {
	seen := make(map[Theme]bool)
	themes := []Theme{}
	for _, lesson := range lessons {
		theme := Theme{Name: lesson.Name, Format: lesson.Format}
		if seen[theme] {
			continue
		}
		seen[theme] = true
		themes = append(themes, theme)
	}

	slices.SortStableFunc(themes, func(a, b Theme) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return themes
}

// ExtractLessonTimes returns the distinct class periods in ascending order.
func ExtractLessonTimes(lessons []Lesson) []int {
	seen := make(map[int]bool)
	times := []int{}
	for _, lesson := range lessons {
		if !seen[lesson.LessonTime] {
			seen[lesson.LessonTime] = true
			times = append(times, lesson.LessonTime)
		}
	}
	slices.Sort(times)
	return times
}
