package editor

// mutationMsg reports the outcome of a session mutation.
type mutationMsg struct {
	action string
	err    error
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	instanceID string
	err        error
}
