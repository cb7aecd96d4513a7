//go:build e2e

package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ToggleInterview(t *testing.T) {
	page := newPage(t)
	navigateToBoard(t, page)
	selectTab(t, page, "all")

	card := page.Locator("#job-1")
	require.NoError(t, card.Locator(".btn-interview").Click())
	err := page.Locator("#job-1 .status-interview").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)

	text, err := page.Locator("#job-1 .status-badge").TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Interview", text)

	// interview tab contains the job
	selectTab(t, page, "interview")
	visible, err := page.Locator("#job-1").IsVisible()
	require.NoError(t, err)
	assert.True(t, visible)

	// toggling again removes it from the interview tab
	require.NoError(t, page.Locator("#job-1 .btn-interview").Click())
	err = page.Locator("#job-1").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)
}

func TestBoard_RejectedOverridesInterview(t *testing.T) {
	page := newPage(t)
	navigateToBoard(t, page)
	selectTab(t, page, "all")

	require.NoError(t, page.Locator("#job-2 .btn-interview").Click())
	err := page.Locator("#job-2 .status-interview").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)

	require.NoError(t, page.Locator("#job-2 .btn-rejected").Click())
	err = page.Locator("#job-2 .status-rejected").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)

	count, err := page.Locator("#job-2 .status-badge").Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "single badge, statuses are exclusive")

	selectTab(t, page, "rejected")
	summary, err := page.Locator("#summary").TextContent()
	require.NoError(t, err)
	assert.Contains(t, summary, " of ")
	assert.Contains(t, summary, "jobs")
}

func TestBoard_DeleteJob(t *testing.T) {
	page := newPage(t)
	navigateToBoard(t, page)
	selectTab(t, page, "all")

	before := countValue(t, page, "count-total")
	require.NoError(t, page.Locator("#job-6 .btn-delete").Click())
	err := page.Locator("#job-6").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)

	after := countValue(t, page, "count-total")
	assert.NotEqual(t, before, after, "total count updated")

	// reload shows the job is gone for good
	navigateToBoard(t, page)
	count, err := page.Locator("#job-6").Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
