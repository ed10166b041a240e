package update_office_layout

import "context"

type OfficesService interface {
	UpdateLayout(ctx context.Context, officeSpaceID string, layoutDocument string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
