package records

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	POST(path string, body any) error
	PUT(path string, body any) error
	DELETE(path string) error
	Date() string
	GetLastStatusCode() int
	GetResponseField(path string) (any, error)
}

// RegisterSteps registers meal record step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &recordSteps{tc: tc}

	ctx.Step(`^I add "([^"]*)" with (\d+) kcal to "([^"]*)"$`, steps.addItem)
	ctx.Step(`^I add "([^"]*)" with (\d+) kcal without a time$`, steps.addItemWithoutTime)
	ctx.Step(`^I add an item without a name$`, steps.addItemWithoutName)
	ctx.Step(`^I edit item (\d+) of "([^"]*)" to "([^"]*)" with (\d+) kcal$`, steps.editItem)
	ctx.Step(`^I delete item (\d+) of "([^"]*)"$`, steps.deleteItem)
	ctx.Step(`^I set the memo to "([^"]*)"$`, steps.setMemo)

	ctx.Step(`^"([^"]*)" should hold (\d+) items?$`, steps.bucketShouldHold)
	ctx.Step(`^item (\d+) of "([^"]*)" should be "([^"]*)"$`, steps.itemShouldBe)
	ctx.Step(`^the record should not exist$`, steps.recordShouldNotExist)
	ctx.Step(`^the calendar should mark the date$`, steps.calendarShouldMarkDate)
}

type recordSteps struct {
	tc TestContext
}

func itemPath(label string, index int) string {
	return fmt.Sprintf("/v1/records/{date}/meals/%s/items/%d", url.PathEscape(label), index)
}

func (s *recordSteps) addItem(ctx context.Context, name string, kcal int, label string) error {
	return s.tc.POST("/v1/records/{date}/items", map[string]any{
		"time":     label,
		"name":     name,
		"calories": kcal,
	})
}

func (s *recordSteps) addItemWithoutTime(ctx context.Context, name string, kcal int) error {
	return s.tc.POST("/v1/records/{date}/items", map[string]any{
		"name":     name,
		"calories": kcal,
	})
}

func (s *recordSteps) addItemWithoutName(ctx context.Context) error {
	return s.tc.POST("/v1/records/{date}/items", map[string]any{"calories": 100})
}

func (s *recordSteps) editItem(ctx context.Context, index int, label, name string, kcal int) error {
	return s.tc.PUT(itemPath(label, index), map[string]any{
		"name":     name,
		"calories": kcal,
	})
}

func (s *recordSteps) deleteItem(ctx context.Context, index int, label string) error {
	return s.tc.DELETE(itemPath(label, index))
}

func (s *recordSteps) setMemo(ctx context.Context, memo string) error {
	return s.tc.PUT("/v1/records/{date}/memo", map[string]any{"memo": memo})
}

// bucket fetches the record and returns the items of the bucket labelled label.
func (s *recordSteps) bucket(label string) ([]any, error) {
	if err := s.tc.GET("/v1/records/{date}"); err != nil {
		return nil, err
	}
	if s.tc.GetLastStatusCode() != 200 {
		return nil, fmt.Errorf("record for %s not found (status %d)", s.tc.Date(), s.tc.GetLastStatusCode())
	}
	meals, err := s.tc.GetResponseField("meals")
	if err != nil {
		return nil, err
	}
	for _, m := range meals.([]any) {
		b := m.(map[string]any)
		if b["time"] == label {
			return b["items"].([]any), nil
		}
	}
	return nil, nil
}

func (s *recordSteps) bucketShouldHold(ctx context.Context, label string, n int) error {
	items, err := s.bucket(label)
	if err != nil {
		return err
	}
	if len(items) != n {
		return fmt.Errorf("expected %d items in %q, got %d", n, label, len(items))
	}
	return nil
}

func (s *recordSteps) itemShouldBe(ctx context.Context, index int, label, name string) error {
	items, err := s.bucket(label)
	if err != nil {
		return err
	}
	if index >= len(items) {
		return fmt.Errorf("bucket %q has only %d items", label, len(items))
	}
	if got := items[index].(map[string]any)["name"]; got != name {
		return fmt.Errorf("expected item %d of %q to be %q, got %v", index, label, name, got)
	}
	return nil
}

func (s *recordSteps) recordShouldNotExist(ctx context.Context) error {
	if err := s.tc.GET("/v1/records/{date}"); err != nil {
		return err
	}
	if s.tc.GetLastStatusCode() != 404 {
		return fmt.Errorf("expected no record for %s, got status %d", s.tc.Date(), s.tc.GetLastStatusCode())
	}
	return nil
}

func (s *recordSteps) calendarShouldMarkDate(ctx context.Context) error {
	date := s.tc.Date()
	if err := s.tc.GET("/v1/calendar?month=" + date[:7]); err != nil {
		return err
	}
	dates, err := s.tc.GetResponseField("dates")
	if err != nil {
		return err
	}
	for _, d := range dates.([]any) {
		if d == date {
			return nil
		}
	}
	return fmt.Errorf("calendar for %s does not mark %s", date[:7], date)
}
