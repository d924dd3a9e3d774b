package timetable

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// namePartPattern matches one word of a "Last F. M." style name; apostrophes
// and hyphens stay inside the word and a trailing dot stays with an initial.
var namePartPattern = regexp.MustCompile(`[\p{L}\p{N}'’ʼ-]+\.?`)

// Transform flattens assembled days into lesson records in traversal order.
// Records repeating the name, day, period, weeks and subgroup of an earlier
// record are dropped.
func (p *Parser) Transform(days []Day) ([]Lesson, error) {
	lessons := []Lesson{}
	seen := make(map[string]bool)

	for _, day := range days {
		index := p.lookup(p.vocab.Days, day.Name)
		if index < 0 {
			return nil, &UnknownDayError{Name: day.Name}
		}

		for _, slot := range day.Slots {
			lesson := p.transformSlot(index+1, slot)

			key := fmt.Sprintf("%s|%d|%d|%d|%d", lesson.Name, lesson.Day, lesson.LessonTime, lesson.Weeks, lesson.Subgroup)
			if seen[key] {
				continue
			}
			seen[key] = true
			lessons = append(lessons, lesson)
		}
	}

	return lessons, nil
}

func (p *Parser) transformSlot(day int, slot Slot) Lesson {
	f := slot.Fragment

	teachers := make([]Teacher, 0, len(f.Teachers))
	for _, name := range f.Teachers {
		teachers = append(teachers, ParseTeacher(name))
	}

	var room *Room
	if f.Location != nil {
		room = &Room{Building: f.Location.Building, RoomNumber: f.Location.Room}
	}

	return Lesson{
		Name:       f.Name,
		Format:     p.ParseFormat(f.Type),
		Teachers:   teachers,
		RoomData:   room,
		Day:        day,
		LessonTime: slot.Number,
		Weeks:      f.Week,
		Subgroup:   f.Subgroup,
	}
}

// ParseFormat maps lesson type text to a Format. Unlisted types, such as
// electives, become FormatUnknown.
func (p *Parser) ParseFormat(text string) Format {
	if i := p.lookup(p.vocab.Formats, text); i >= 0 {
		return Format(i)
	}
	return FormatUnknown
}

// ParseTeacher splits a teacher name into last name and initials. Parts the
// source omits are left empty.
func ParseTeacher(fullName string) Teacher {
	fullName = strings.TrimSpace(fullName)
	teacher := Teacher{FullName: fullName}

	parts := namePartPattern.FindAllString(fullName, 3)
	if len(parts) > 0 {
		teacher.LastName = strings.TrimSuffix(parts[0], ".")
	}
	if len(parts) > 1 {
		teacher.FirstInitial = initial(parts[1])
	}
	if len(parts) > 2 {
		teacher.MiddleInitial = initial(parts[2])
	}
	return teacher
}

// initial shortens a name word to its first letter, keeping the dot of an
// abbreviated word and adding one to a spelled-out word.
func initial(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == len(word) {
		return word
	}
	return string(r) + "."
}
