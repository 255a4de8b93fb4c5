package sink

import "context"

// IUsageLogSink место, куда дописывается дневная строка статистики
type IUsageLogSink interface {
	Append(ctx context.Context, day string, line string) error
}
