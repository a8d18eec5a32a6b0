package models

// RegistrationStatus is the lifecycle state of a registration
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
)

// MessageType marks the outcome of a page action
type MessageType string

const (
	MessageTypeSuccess MessageType = "success"
	MessageTypeError   MessageType = "error"
)
