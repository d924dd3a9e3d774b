package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseOptions reads the options of the <select name="name"> element of a
// page. The leading "All" entry is skipped.
func ParseOptions(r io.Reader, name string) ([]Option, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	sel := doc.Find(fmt.Sprintf("select[name=%q]", name)).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("select %q not found", name)
	}

	options := []Option{}
	sel.Find("option").Each(func(i int, opt *goquery.Selection) {
		if i == 0 {
			return
		}
		val, exists := opt.Attr("value")
		if exists && val != "" {
			options = append(options, Option{
				Value:   val,
				Caption: strings.TrimSpace(opt.Text()),
			})
		}
	})

	return options, nil
}

func (c *Client) fetchOptions(ctx context.Context, institute, name string) ([]Option, error) {
	resp, err := c.Get(ctx, c.URL(institute, ""))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseOptions(resp.Body, name)
}

// FetchInstitutes retrieves the institutes listed on the schedule page
func (c *Client) FetchInstitutes(ctx context.Context) ([]Option, error) {
	return c.fetchOptions(ctx, "", InstituteParam)
}

// FetchGroups retrieves the groups of one institute
func (c *Client) FetchGroups(ctx context.Context, institute string) ([]Option, error) {
	groups, err := c.fetchOptions(ctx, institute, GroupParam)
	if err != nil {
		return nil, fmt.Errorf("groups of %s: %w", institute, err)
	}
	return groups, nil
}

// FetchTargets lists every group of the given institutes, or of all
// institutes when none are given.
func (c *Client) FetchTargets(ctx context.Context, institutes ...string) ([]Target, error) {
	if len(institutes) == 0 {
		options, err := c.FetchInstitutes(ctx)
		if err != nil {
			return nil, err
		}
		for _, opt := range options {
			institutes = append(institutes, opt.Value)
		}
	}

	var targets []Target
	for _, institute := range institutes {
		groups, err := c.FetchGroups(ctx, institute)
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			targets = append(targets, Target{Institute: institute, Group: g.Value})
		}
	}
	return targets, nil
}
