package service

//Error taxonomy of the contact pipeline. The controller maps each type to an
//HTTP status: InvalidPayloadErr 400, UnauthorizedErr 401, NotifyErr 502,
//ConfigErr and StorageErr 500, anything else 500 with a generic message.

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type UnauthorizedErr struct {
	message string
}

func (e *UnauthorizedErr) Error() string {
	return e.message
}

func NewUnauthorizedError(msg string) *UnauthorizedErr {
	return &UnauthorizedErr{message: msg}
}

type NotifyErr struct {
	message string
}

func (e *NotifyErr) Error() string {
	return e.message
}

func NewNotifyError(msg string) *NotifyErr {
	return &NotifyErr{message: msg}
}

type ConfigErr struct {
	message string
}

func (e *ConfigErr) Error() string {
	return e.message
}

func NewConfigError(msg string) *ConfigErr {
	return &ConfigErr{message: msg}
}

type StorageErr struct {
	message string
}

func (e *StorageErr) Error() string {
	return e.message
}

func NewStorageError(msg string) *StorageErr {
	return &StorageErr{message: msg}
}
