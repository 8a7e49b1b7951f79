package send_broadcast

import (
	"context"

	sendBroadcast "github.com/m04kA/SMC-GymConsole/internal/usecase/send_broadcast"
)

type SendBroadcastUseCase interface {
	Execute(ctx context.Context, req *sendBroadcast.Request) (*sendBroadcast.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
