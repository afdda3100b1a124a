package domain

// DefaultThreshold effectively disables critical mass alerts until a
// channel sets its own value with the cm command.
const DefaultThreshold = 1 << 16

// PollBlockSize is how many date buttons fit in one poll message.
const PollBlockSize = 5

// DefaultPollDays is the poll length when the command gives no count.
const DefaultPollDays = 20

// ToggleActionID identifies poll date buttons in interaction callbacks.
const ToggleActionID = "toggle_date"
