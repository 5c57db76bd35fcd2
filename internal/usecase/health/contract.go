package health

import "context"

// ArchivePinger checks archive backend availability.
type ArchivePinger interface {
	Ping(ctx context.Context) error
}
