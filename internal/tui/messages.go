package tui

// NextStepMsg asks the root model to advance the wizard one step
type NextStepMsg struct{}

// PrevStepMsg asks the root model to go back one step
type PrevStepMsg struct{}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// OpenNewItemFormMsg tells the items screen to open the new catalog item form
type OpenNewItemFormMsg struct{}

// firstRunCheckMsg reports whether the catalog has any items
type firstRunCheckMsg struct {
	hasItems bool
}
