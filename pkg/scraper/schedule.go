package scraper

import (
	"context"
	"fmt"

	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

// FetchTimetable downloads the schedule page of a group and parses it with p.
func (c *Client) FetchTimetable(ctx context.Context, p *timetable.Parser, target Target) (*timetable.Result, error) {
	resp, err := c.Get(ctx, c.URL(target.Institute, target.Group))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result, err := p.Build(resp.Body, target.Institute, target.Group)
	if err != nil {
		return nil, fmt.Errorf("timetable of %s: %w", target, err)
	}
	return result, nil
}
