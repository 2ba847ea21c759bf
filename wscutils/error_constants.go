package wscutils

// Error message IDs
const (
	MsgIDInvalidJson = 1001 // Represents an invalid JSON error
)

const DefaultMsgID = 9999 // Default message ID for unspecified validation errors
