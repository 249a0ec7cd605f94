package tui

type modalKind int

const (
	modalNone modalKind = iota
	modalEditPerson
	modalWarning
	modalConfirmDelete
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusNone confirmModalFocus = iota
	confirmFocusConfirm
	confirmFocusCancel
)

// Edit form focus: 0..len(flow.Fields)-1 are the inputs, followed by the buttons.
const (
	formFocusSave = iota + 6
	formFocusCancel
	formFocusCount
)

type minibufferClearMsg struct{ seq int }
