package util

const (
	// NoneTypeName is reported as the type of a missing or nil value
	NoneTypeName = "NoneType"
)
