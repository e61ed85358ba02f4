package common

// UnknownStr is the label used for enum values outside their defined range.
const UnknownStr = "unknown"
