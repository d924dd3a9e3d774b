package timetable

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors of the schedule page markup.
const (
	daySelector         = ".view-grouping"
	dayHeaderSelector   = ".view-grouping-header"
	dayContentSelector  = ".view-grouping-content"
	lessonSelector      = ".stud_schedule"
	slotHeadingSelector = "h3"
	fragmentSelector    = ".group_content"
)

// Assemble walks the day sections of a schedule page in source order and
// parses every lesson container under the class period heading before it.
func (p *Parser) Assemble(doc *goquery.Document) ([]Day, error) {
	var (
		days []Day
		err  error
	)

	doc.Find(daySelector).EachWithBreak(func(_ int, section *goquery.Selection) bool {
		var day Day
		day, err = p.assembleDay(section)
		if err != nil {
			return false
		}
		days = append(days, day)
		return true
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (p *Parser) assembleDay(section *goquery.Selection) (Day, error) {
	day := Day{Name: strings.TrimSpace(section.Find(dayHeaderSelector).First().Text())}

	var err error
	section.Find(dayContentSelector).First().Find(lessonSelector).EachWithBreak(func(_ int, lesson *goquery.Selection) bool {
		var slots []Slot
		slots, err = p.assembleLesson(lesson)
		if err != nil {
			var mf *MalformedFragmentError
			if errors.As(err, &mf) {
				mf.Day = day.Name
			}
			return false
		}
		day.Slots = append(day.Slots, slots...)
		return true
	})
	if err != nil {
		return Day{}, err
	}
	return day, nil
}

// assembleLesson parses every fragment of one lesson container. Subgroup
// and week variants of the same period share the container and its heading.
func (p *Parser) assembleLesson(lesson *goquery.Selection) ([]Slot, error) {
	heading := lesson.PrevAllFiltered(slotHeadingSelector).First()
	if heading.Length() == 0 {
		return nil, &MalformedFragmentError{Reason: "lesson has no preceding " + slotHeadingSelector + " heading"}
	}
	headingText := strings.TrimSpace(heading.Text())
	number, err := strconv.Atoi(headingText)
	if err != nil || number < 1 {
		return nil, &MalformedFragmentError{Reason: "slot heading " + strconv.Quote(headingText) + " is not a positive integer"}
	}

	contents := lesson.Find(fragmentSelector)
	if contents.Length() == 0 {
		return nil, &MalformedFragmentError{Slot: number, Reason: "lesson has no " + fragmentSelector + " element"}
	}

	slots := make([]Slot, 0, contents.Length())
	contents.EachWithBreak(func(_ int, content *goquery.Selection) bool {
		containerID, _ := content.Parent().Attr("id")
		var fragment Fragment
		fragment, err = p.ParseFragment(content, containerID)
		if err != nil {
			var mf *MalformedFragmentError
			if errors.As(err, &mf) {
				mf.Slot = number
			}
			return false
		}
		slots = append(slots, Slot{Number: number, Fragment: fragment})
		return true
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}
