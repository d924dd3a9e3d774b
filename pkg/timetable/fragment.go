package timetable

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	nbsp              = "\u00a0"
	layoutSpace       = " \t\r\n" // unlike strings.TrimSpace, keeps the nbsp delimiter
	fragmentSegments  = 3
	containerIDSep    = "_"
	minContainerParts = 2
)

// ParseFragmentHTML parses markup as the inner content of a lesson container.
func (p *Parser) ParseFragmentHTML(markup, containerID string) (Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Fragment{}, fmt.Errorf("parse fragment markup: %w", err)
	}
	return p.ParseFragment(doc.Find("body"), containerID)
}

// ParseFragment decodes one lesson slot. content is the element whose
// children hold "name<br>teachers<br>location&nbsp;type"; containerID is
// the id of the element wrapping it, e.g. "group_full" or "sub_2_znam".
func (p *Parser) ParseFragment(content *goquery.Selection, containerID string) (Fragment, error) {
	segments := splitOnBreaks(content)
	if len(segments) < fragmentSegments {
		return Fragment{}, malformed(containerID,
			"expected %d line-break separated segments, got %d", fragmentSegments, len(segments))
	}

	location, lessonType, err := splitLocationType(segments[2])
	if err != nil {
		return Fragment{}, malformed(containerID, "%v", err)
	}

	week, subgroup, err := p.parseContainerID(containerID)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{
		Name:     segments[0],
		Teachers: splitTeachers(segments[1]),
		Location: location,
		Type:     lessonType,
		Week:     week,
		Subgroup: subgroup,
	}, nil
}

// splitOnBreaks returns the trimmed text between <br> elements among the
// direct children of sel.
func splitOnBreaks(sel *goquery.Selection) []string {
	var (
		segments []string
		current  strings.Builder
	)
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		if goquery.NodeName(child) == "br" {
			segments = append(segments, strings.Trim(current.String(), layoutSpace))
			current.Reset()
			return
		}
		current.WriteString(child.Text())
	})
	return append(segments, strings.Trim(current.String(), layoutSpace))
}

// splitTeachers splits a comma separated teacher list, dropping blanks.
func splitTeachers(text string) []string {
	teachers := []string{}
	for _, name := range strings.Split(text, ",") {
		if name = strings.TrimSpace(name); name != "" {
			teachers = append(teachers, name)
		}
	}
	return teachers
}

// splitLocationType cuts "204 B&nbsp;Лекція" into its location and type.
// A location of at most one character is the page's placeholder separator.
func splitLocationType(text string) (*Location, string, error) {
	parts := strings.Split(text, nbsp)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("expected location and type separated by a non-breaking space, got %d parts", len(parts))
	}

	locationText := strings.TrimSpace(parts[0])
	lessonType := strings.TrimSpace(parts[1])
	if utf8.RuneCountInString(locationText) <= 1 {
		return nil, lessonType, nil
	}

	var tokens []string
	for _, field := range strings.Fields(locationText) {
		if field = strings.Trim(field, ","); field != "" {
			tokens = append(tokens, field)
		}
	}
	if len(tokens) == 0 {
		return nil, lessonType, nil
	}

	location := &Location{Room: tokens[0]}
	if len(tokens) > 1 {
		location.Building = tokens[1]
	}
	return location, lessonType, nil
}

// parseContainerID reads the week flag from the last id token and the
// subgroup from the token before it when the id has more than two tokens.
func (p *Parser) parseContainerID(id string) (Week, int, error) {
	tokens := strings.Split(strings.TrimSpace(id), containerIDSep)
	if len(tokens) < minContainerParts {
		return 0, 0, malformed(id, "container id has %d tokens, want at least %d", len(tokens), minContainerParts)
	}

	flag := tokens[len(tokens)-1]
	week := p.lookup(p.vocab.Weeks, flag)
	if week < 0 {
		return 0, 0, malformed(id, "unknown week flag %q", flag)
	}

	if len(tokens) == minContainerParts {
		return Week(week), 0, nil
	}

	subgroup, err := strconv.Atoi(tokens[len(tokens)-2])
	if err != nil || subgroup < 0 {
		return 0, 0, malformed(id, "subgroup token %q is not a non-negative integer", tokens[len(tokens)-2])
	}
	return Week(week), subgroup, nil
}
