package scraper

// Option is one entry of a page <select>: the query value and its caption.
type Option struct {
	Value   string
	Caption string
}

// Target identifies the timetable of one group of an institute.
type Target struct {
	Institute string
	Group     string
}

func (t Target) String() string {
	return t.Institute + "/" + t.Group
}
