package exporter

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata" // Europe/Kyiv is missing from older system zone databases

	"github.com/viktor-yakubiv/lp/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// Bell is the start and end of a class period as "15:04" clock times.
type Bell struct {
	Start string
	End   string
}

// DefaultBells is the Lviv Polytechnic class period schedule.
var DefaultBells = map[int]Bell{
	1: {"08:30", "09:50"},
	2: {"10:05", "11:25"},
	3: {"11:40", "13:00"},
	4: {"13:15", "14:35"},
	5: {"14:50", "16:10"},
	6: {"16:25", "17:45"},
	7: {"18:00", "19:20"},
	8: {"19:30", "20:50"},
}

// ICSOptions controls how lessons are laid out on a calendar.
type ICSOptions struct {
	// SemesterStart is any day of the first (odd) week of the semester.
	SemesterStart time.Time
	// Weeks is the semester length; 16 when zero.
	Weeks int
	// Subgroup keeps whole-group lessons plus those of this subgroup; 0 keeps all.
	Subgroup int
	Bells    map[int]Bell
	Location *time.Location
}

var formatNames = map[timetable.Format]string{
	timetable.FormatLecture:   "Лекція",
	timetable.FormatSeminar:   "Семінар",
	timetable.FormatPractical: "Практична",
	timetable.FormatLab:       "Лабораторна",
	timetable.FormatUnknown:   "Інше",
}

// GenerateICS writes one calendar event per lesson occurrence of the
// semester. Lessons whose period is not in the bell schedule are skipped.
func GenerateICS(r *timetable.Result, opts ICSOptions, w io.Writer) error {
	if opts.SemesterStart.IsZero() {
		return fmt.Errorf("semester start date is required")
	}
	if opts.Weeks <= 0 {
		opts.Weeks = 16
	}
	if opts.Bells == nil {
		opts.Bells = DefaultBells
	}
	if opts.Location == nil {
		loc, err := time.LoadLocation("Europe/Kyiv")
		if err != nil {
			return fmt.Errorf("could not load timezone: %w", err)
		}
		opts.Location = loc
	}

	start := opts.SemesterStart.In(opts.Location)
	// back to the Monday of the first week
	monday := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, opts.Location).
		AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("%s %s", r.Faculty, r.Group))

	stamp := time.Now()
	for i, lesson := range r.Lessons {
		if opts.Subgroup != 0 && lesson.Subgroup != 0 && lesson.Subgroup != opts.Subgroup {
			continue
		}
		bell, ok := opts.Bells[lesson.LessonTime]
		if !ok {
			continue
		}

		for week := 0; week < opts.Weeks; week++ {
			if !runsOnWeek(lesson.Weeks, week) {
				continue
			}
			day := monday.AddDate(0, 0, week*7+lesson.Day-1)

			startTime, err := clock(day, bell.Start)
			if err != nil {
				return fmt.Errorf("bell %d: %w", lesson.LessonTime, err)
			}
			endTime, err := clock(day, bell.End)
			if err != nil {
				return fmt.Errorf("bell %d: %w", lesson.LessonTime, err)
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%s-%d-%s@lp.edu.ua", r.Faculty, r.Group, i, day.Format("20060102")))
			event.SetDtStampTime(stamp)
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(lesson.Name)
			if lesson.RoomData != nil {
				event.SetLocation(fmt.Sprintf("%s %s", lesson.RoomData.RoomNumber, lesson.RoomData.Building))
			}
			event.SetDescription(describe(lesson))
		}
	}

	return cal.SerializeTo(w)
}

// runsOnWeek reports whether a lesson takes place in the zero-based week;
// the first week of a semester is odd.
func runsOnWeek(weeks timetable.Week, week int) bool {
	switch weeks {
	case timetable.WeekOdd:
		return week%2 == 0
	case timetable.WeekEven:
		return week%2 == 1
	default:
		return true
	}
}

func clock(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func describe(lesson timetable.Lesson) string {
	desc := "Type: " + formatNames[lesson.Format]
	for i, t := range lesson.Teachers {
		if i == 0 {
			desc += "\nTeachers: " + t.FullName
		} else {
			desc += ", " + t.FullName
		}
	}
	if lesson.Subgroup != 0 {
		desc += fmt.Sprintf("\nSubgroup: %d", lesson.Subgroup)
	}
	return desc
}
