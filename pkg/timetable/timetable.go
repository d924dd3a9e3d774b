// Package timetable extracts lesson records from lp.edu.ua schedule pages.
//
// A page is processed in four steps: Assemble walks the day sections and
// parses each lesson fragment, Transform normalises the fragments into
// Lesson records, and the Extract functions derive the teacher, theme and
// lesson time summaries. Build runs all of them.
package timetable

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

var defaultParser = NewParser(DefaultVocabulary())

// Build parses a schedule page and assembles the timetable of one group.
func (p *Parser) Build(r io.Reader, faculty, group string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse schedule page: %w", err)
	}
	return p.BuildDocument(doc, faculty, group)
}

// BuildDocument is Build for an already parsed page.
func (p *Parser) BuildDocument(doc *goquery.Document, faculty, group string) (*Result, error) {
	days, err := p.Assemble(doc)
	if err != nil {
		return nil, err
	}

	lessons, err := p.Transform(days)
	if err != nil {
		return nil, err
	}

	return &Result{
		Faculty:     faculty,
		Group:       group,
		Teachers:    ExtractTeachers(lessons),
		Themes:      ExtractThemes(lessons),
		LessonTimes: ExtractLessonTimes(lessons),
		Lessons:     lessons,
	}, nil
}

// Build runs the default parser over a schedule page.
func Build(r io.Reader, faculty, group string) (*Result, error) {
	return defaultParser.Build(r, faculty, group)
}
