package timetable

// Format is the category of a lesson, indexed the way the source vocabulary lists them.
type Format int

const (
	FormatLecture Format = iota
	FormatSeminar
	FormatPractical
	FormatLab
	FormatUnknown
)

// Week tells which weeks of the fortnight a lesson runs on.
type Week int

const (
	WeekFull Week = iota
	WeekOdd
	WeekEven
)

// Location is the raw room/building pair cut from a fragment's location text.
type Location struct {
	Room     string
	Building string
}

// Fragment is a single lesson slot as it appears in the page, before normalisation.
type Fragment struct {
	Name     string
	Teachers []string
	Location *Location // nil when the page shows no location
	Type     string
	Week     Week
	Subgroup int
}

// Slot pairs a fragment with the class period announced by its heading.
type Slot struct {
	Number   int
	Fragment Fragment
}

// Day is one day section of the page, slots kept in source order.
type Day struct {
	Name  string
	Slots []Slot
}

// Teacher is a normalised teacher name. FullName is the identity key.
type Teacher struct {
	FullName      string `json:"full_name" bson:"full_name"`
	LastName      string `json:"last_name" bson:"last_name"`
	FirstInitial  string `json:"first_initial" bson:"first_initial"`
	MiddleInitial string `json:"middle_initial" bson:"middle_initial"`
}

// Room is the structured location of a lesson.
type Room struct {
	Building   string `json:"building" bson:"building"`
	RoomNumber string `json:"room_number" bson:"room_number"`
}

// Lesson is the canonical lesson record.
type Lesson struct {
	Name       string    `json:"name" bson:"name"`
	Format     Format    `json:"format" bson:"format"`
	Teachers   []Teacher `json:"teachers" bson:"teachers"`
	RoomData   *Room     `json:"room_data" bson:"room_data"`
	Day        int       `json:"day" bson:"day"`
	LessonTime int       `json:"lesson_time" bson:"lesson_time"`
	Weeks      Week      `json:"weeks" bson:"weeks"`
	Subgroup   int       `json:"subgroup" bson:"subgroup"`
}

// Theme is a distinct course name and format pair.
type Theme struct {
	Name   string `json:"name" bson:"name"`
	Format Format `json:"format" bson:"format"`
}

// Result is the full timetable of one group.
type Result struct {
	Faculty     string    `json:"faculty" bson:"faculty"`
	Group       string    `json:"group" bson:"group"`
	Teachers    []Teacher `json:"teachers" bson:"teachers"`
	Themes      []Theme   `json:"themes" bson:"themes"`
	LessonTimes []int     `json:"lesson_times" bson:"lesson_times"`
	Lessons     []Lesson  `json:"lessons" bson:"lessons"`
}
